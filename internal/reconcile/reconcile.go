// Package reconcile diffs a team's stored test results against a fresh CI
// report.
package reconcile

import "gradeline/internal/domain"

// Snapshot is the stored state a report is reconciled against.
type Snapshot struct {
	TeamID   int64
	RepoName string
	// Tests are the team's current results.
	Tests []domain.Test
	// ProjectSteps are the step names the project currently has.
	ProjectSteps []string
	// PinnedSteps are steps still referenced by other teams' tests. They are
	// never deleted by this team's reconciliation.
	PinnedSteps map[string]struct{}
}

// Plan must be applied in field order: create steps, upsert tests, delete
// tests, delete steps.
type Plan struct {
	StepsToCreate []string
	TestsToUpsert []domain.Test
	TestsToDelete []domain.TestKey
	StepsToDelete []string
}

func (p Plan) Empty() bool {
	return len(p.StepsToCreate) == 0 &&
		len(p.TestsToUpsert) == 0 &&
		len(p.TestsToDelete) == 0 &&
		len(p.StepsToDelete) == 0
}

// Flatten turns a report into one test record per (step, test) pair, in
// report order. Passing tests get the "OK" error and no message. When the
// same pair appears twice the last occurrence wins and keeps the first
// position.
func Flatten(teamID int64, repoName string, steps []domain.ReportStep) []domain.Test {
	out := make([]domain.Test, 0)
	index := make(map[domain.TestKey]int)

	for _, step := range steps {
		for _, rt := range step.Tests {
			test := domain.Test{
				TeamID:   teamID,
				RepoName: repoName,
				StepName: step.Name,
				TestName: rt.Name,
				Passed:   rt.Passed,
				Error:    domain.PassedError,
			}
			if !rt.Passed {
				if rt.Error != nil {
					test.Error = *rt.Error
				}
				test.Message = rt.Message
			}

			if i, ok := index[test.Key()]; ok {
				out[i] = test
				continue
			}
			index[test.Key()] = len(out)
			out = append(out, test)
		}
	}

	return out
}

// Reconcile computes the four-phase plan that brings the snapshot in line
// with the report. The result is deterministic: every list follows report
// order or, for deletions, stored order.
func Reconcile(snap Snapshot, steps []domain.ReportStep) Plan {
	incoming := Flatten(snap.TeamID, snap.RepoName, steps)

	projectSteps := make(map[string]struct{}, len(snap.ProjectSteps))
	for _, name := range snap.ProjectSteps {
		projectSteps[name] = struct{}{}
	}

	existing := make(map[domain.TestKey]domain.Test, len(snap.Tests))
	for _, test := range snap.Tests {
		existing[test.Key()] = test
	}

	plan := Plan{
		StepsToCreate: make([]string, 0),
		TestsToUpsert: make([]domain.Test, 0),
		TestsToDelete: make([]domain.TestKey, 0),
		StepsToDelete: make([]string, 0),
	}

	incomingKeys := make(map[domain.TestKey]struct{}, len(incoming))
	incomingSteps := make(map[string]struct{})

	for _, test := range incoming {
		incomingKeys[test.Key()] = struct{}{}

		if _, seen := incomingSteps[test.StepName]; !seen {
			incomingSteps[test.StepName] = struct{}{}
			if _, ok := projectSteps[test.StepName]; !ok {
				plan.StepsToCreate = append(plan.StepsToCreate, test.StepName)
			}
		}

		stored, ok := existing[test.Key()]
		if !ok || changed(stored, test) {
			plan.TestsToUpsert = append(plan.TestsToUpsert, test)
		}
	}

	for _, test := range snap.Tests {
		if _, ok := incomingKeys[test.Key()]; !ok {
			plan.TestsToDelete = append(plan.TestsToDelete, test.Key())
		}
	}

	seen := make(map[string]struct{}, len(snap.ProjectSteps))
	for _, name := range snap.ProjectSteps {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if _, ok := incomingSteps[name]; ok {
			continue
		}
		if _, pinned := snap.PinnedSteps[name]; pinned {
			continue
		}
		plan.StepsToDelete = append(plan.StepsToDelete, name)
	}

	return plan
}

// ReconcileSteps is the owner variant: only the project's step set follows
// the report, no tests are stored.
func ReconcileSteps(projectSteps []string, pinned map[string]struct{}, steps []domain.ReportStep) Plan {
	plan := Reconcile(Snapshot{ProjectSteps: projectSteps, PinnedSteps: pinned}, steps)
	plan.TestsToUpsert = make([]domain.Test, 0)
	plan.TestsToDelete = make([]domain.TestKey, 0)
	return plan
}

// Apply returns the test set a store holds after the plan is applied to tests.
func Apply(tests []domain.Test, plan Plan) []domain.Test {
	deleted := make(map[domain.TestKey]struct{}, len(plan.TestsToDelete))
	for _, key := range plan.TestsToDelete {
		deleted[key] = struct{}{}
	}
	upserts := make(map[domain.TestKey]domain.Test, len(plan.TestsToUpsert))
	for _, test := range plan.TestsToUpsert {
		upserts[test.Key()] = test
	}

	out := make([]domain.Test, 0, len(tests)+len(plan.TestsToUpsert))
	for _, test := range tests {
		if _, ok := deleted[test.Key()]; ok {
			continue
		}
		if up, ok := upserts[test.Key()]; ok {
			out = append(out, up)
			delete(upserts, test.Key())
			continue
		}
		out = append(out, test)
	}
	for _, test := range plan.TestsToUpsert {
		if _, ok := upserts[test.Key()]; ok {
			out = append(out, test)
		}
	}
	return out
}

// ApplySteps returns the project step set after the plan is applied.
func ApplySteps(steps []string, plan Plan) []string {
	deleted := make(map[string]struct{}, len(plan.StepsToDelete))
	for _, name := range plan.StepsToDelete {
		deleted[name] = struct{}{}
	}
	out := make([]string, 0, len(steps)+len(plan.StepsToCreate))
	for _, name := range steps {
		if _, ok := deleted[name]; !ok {
			out = append(out, name)
		}
	}
	return append(out, plan.StepsToCreate...)
}

func changed(stored, incoming domain.Test) bool {
	if stored.Passed != incoming.Passed || stored.Error != incoming.Error {
		return true
	}
	switch {
	case stored.Message == nil && incoming.Message == nil:
		return false
	case stored.Message == nil || incoming.Message == nil:
		return true
	}
	return *stored.Message != *incoming.Message
}
