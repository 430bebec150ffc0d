package http

import "time"

type errorBody struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Missing []string `json:"missing,omitempty"`
}

type ErrorResponse struct {
	Error errorBody `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// CI callbacks

type CITestDTO struct {
	Name    string  `json:"name"`
	Passed  bool    `json:"passed"`
	Error   *string `json:"error,omitempty"`
	Message *string `json:"message,omitempty"`
}

type CIStepDTO struct {
	Name  string      `json:"name"`
	Tests []CITestDTO `json:"tests"`
}

type CIReportRequest struct {
	Token string      `json:"token"`
	Steps []CIStepDTO `json:"steps"`
}

type PushRepositoryDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
}

type PushEventRequest struct {
	Repository *PushRepositoryDTO `json:"repository"`
}

// Provisioning

type ProjectCreateRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	TemplateURL string     `json:"template_url,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

type ProjectDTO struct {
	RepoName    string     `json:"repo_name"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Open        bool       `json:"open"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ProjectCreateResponse struct {
	Project ProjectDTO `json:"project"`
}

type TeamsProvisionRequest struct {
	Teams           [][]string `json:"teams"`
	ProtectedBranch string     `json:"protected_branch,omitempty"`
	ProtectedFiles  []string   `json:"protected_files,omitempty"`
}

type ProvisionedTeamDTO struct {
	TeamRepoName string   `json:"team_repo_name"`
	Members      []string `json:"members"`
	CloneURL     string   `json:"clone_url,omitempty"`
}

// TeamsProvisionResponse carries the teams created before a failure along
// with the error that stopped the batch.
type TeamsProvisionResponse struct {
	Teams []ProvisionedTeamDTO `json:"teams"`
	Error *errorBody           `json:"error,omitempty"`
}

type AccountCreateRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
}

type AccountDTO struct {
	ID        int64  `json:"id_account"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type AccountCreateResponse struct {
	Account AccountDTO `json:"account"`
}

// Exercises

type ExerciseDTO struct {
	RepoName     string `json:"repo_name"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Open         bool   `json:"open"`
	TeamFinished *bool  `json:"team_finished"`
	Owned        bool   `json:"owned"`
}

type ExercisesResponse struct {
	Exercises []ExerciseDTO `json:"exercises"`
}

type LeaderboardEntryDTO struct {
	Rank            int      `json:"rank"`
	TeamRepoName    string   `json:"team_repo_name"`
	Members         []string `json:"members"`
	EarnedPoints    int      `json:"earned_points"`
	MaxPoints       int      `json:"max_points"`
	PercentFinished int      `json:"percent_finished"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntryDTO `json:"leaderboard"`
}

type TestResultDTO struct {
	Name    string  `json:"name"`
	Passed  bool    `json:"passed"`
	Error   string  `json:"error"`
	Message *string `json:"message"`
}

type StepProgressDTO struct {
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	TestCount   int             `json:"test_count"`
	AllPassed   bool            `json:"all_passed"`
	Tests       []TestResultDTO `json:"tests"`
}

type ScoreboardHeaderDTO struct {
	Title         string     `json:"title"`
	RepoName      string     `json:"repo_name"`
	Open          bool       `json:"open"`
	Rank          int        `json:"rank"`
	StepsFinished int        `json:"steps_finished"`
	StepsTotal    int        `json:"steps_total"`
	LastCommit    *time.Time `json:"last_commit"`
	LastCommitAge string     `json:"last_commit_age,omitempty"`
	TeamFinished  bool       `json:"team_finished"`
}

type ScoreboardResponse struct {
	Header ScoreboardHeaderDTO `json:"header"`
	Steps  []StepProgressDTO   `json:"steps"`
}

type StepUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
