package domain

import "fmt"

// Summary counts what a reconciliation applied.
type Summary struct {
	TestsUpserted int
	StepsCreated  int
	TestsDeleted  int
	StepsDeleted  int
	// StepsOnly is set for owner reports, which carry no team tests.
	StepsOnly bool
}

func (s Summary) Message() string {
	if s.StepsOnly {
		return fmt.Sprintf("%d steps added, %d steps deleted", s.StepsCreated, s.StepsDeleted)
	}
	return fmt.Sprintf("%d tests added/updated, %d steps added, %d tests deleted, %d steps deleted",
		s.TestsUpserted, s.StepsCreated, s.TestsDeleted, s.StepsDeleted)
}
