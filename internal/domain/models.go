package domain

import "time"

type Account struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
}

func (a Account) DisplayName() string {
	switch {
	case a.FirstName == "" && a.LastName == "":
		return a.Username
	case a.LastName == "":
		return a.FirstName
	case a.FirstName == "":
		return a.LastName
	}
	return a.FirstName + " " + a.LastName
}

type Project struct {
	RepoName    string
	Name        string
	Description string
	Open        bool
	Deadline    *time.Time
	OwnerID     int64
	Secret      string
	CreatedAt   time.Time
}

type Step struct {
	RepoName    string
	Name        string
	Title       string
	Description string
	Order       int
}

type Team struct {
	ID            int64
	TeamRepoName  string
	RepoName      string
	WebhookSecret string
	LastCommit    *time.Time
	Finished      bool
	JoinedAt      time.Time
}

// TestKey identifies a test inside one team.
type TestKey struct {
	StepName string
	TestName string
}

type Test struct {
	TeamID   int64
	RepoName string
	StepName string
	TestName string
	Passed   bool
	Error    string
	Message  *string
}

func (t Test) Key() TestKey {
	return TestKey{StepName: t.StepName, TestName: t.TestName}
}

// TeamGraph is a team with everything the scoring views need.
type TeamGraph struct {
	Team    Team
	Members []Account
	Tests   []Test
}

type ProjectGraph struct {
	Project Project
	Steps   []Step
	Teams   []TeamGraph
}

// Exercise is one row of an account's exercise list.
type Exercise struct {
	RepoName     string
	Title        string
	Description  string
	Open         bool
	TeamFinished *bool
	Owned        bool
}
