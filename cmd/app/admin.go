package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gradeline/internal/auth"
	"gradeline/internal/domain"
	"gradeline/internal/service"
	"gradeline/internal/storage/pgx"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) leaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard <repo>",
		Short: "Print the leaderboard of an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStorage(cmd.Context(), func(st *pgx.Storage) error {
				board, err := a.newService(st, nil).Leaderboard(cmd.Context(), args[0], 0)
				if err != nil {
					return err
				}

				tw := table.NewWriter()
				tw.SetOutputMirror(cmd.OutOrStdout())
				tw.AppendHeader(table.Row{"#", "Team", "Members", "Points", "Finished"})
				for i, score := range board {
					tw.AppendRow(table.Row{
						i + 1,
						score.TeamRepoName,
						strings.Join(score.Members, ", "),
						fmt.Sprintf("%d/%d", score.EarnedPoints, score.MaxPoints),
						fmt.Sprintf("%d%%", score.PercentFinished),
					})
				}
				tw.Render()
				return nil
			})
		},
	}
}

// roster is the YAML file accepted by the provision command.
type roster struct {
	Template   string `yaml:"template"`
	Protection struct {
		Branch string   `yaml:"branch"`
		Files  []string `yaml:"files"`
	} `yaml:"protection"`
	Teams [][]string `yaml:"teams"`
}

func loadRoster(path string) (*roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &r, nil
}

func (r *roster) request() service.ProvisionRequest {
	return service.ProvisionRequest{
		Template: r.Template,
		Teams:    r.Teams,
		Protection: domain.BranchProtection{
			Branch: r.Protection.Branch,
			Files:  r.Protection.Files,
		},
	}
}

func (a *app) provisionCmd() *cobra.Command {
	var teamsFile string

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create team repositories from a YAML roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Gitea.URL == "" || a.cfg.Gitea.Token == "" {
				return fmt.Errorf("gitea.url and gitea.token are required")
			}
			r, err := loadRoster(teamsFile)
			if err != nil {
				return err
			}

			return a.withStorage(cmd.Context(), func(st *pgx.Storage) error {
				done, err := a.newService(st, nil).CreateTeamRepositories(cmd.Context(), r.request())

				tw := table.NewWriter()
				tw.SetOutputMirror(cmd.OutOrStdout())
				tw.AppendHeader(table.Row{"Repository", "Members", "Clone URL"})
				for _, team := range done {
					tw.AppendRow(table.Row{team.Team.TeamRepoName, strings.Join(team.Members, ", "), team.Repository.CloneURL})
				}
				tw.Render()

				if err != nil {
					return fmt.Errorf("stopped after %d of %d teams: %w", len(done), len(r.Teams), err)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&teamsFile, "teams", "f", "teams.yaml", "roster file")
	return cmd
}

func (a *app) tokenCmd() *cobra.Command {
	var (
		accountID   int64
		permissions []string
		ttl         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token for an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Auth.JWTSecret == "" {
				return fmt.Errorf("auth.jwt_secret is required")
			}
			if accountID <= 0 {
				return fmt.Errorf("--account is required")
			}

			perms := auth.NewPermissionCache(auth.FilePermissions(a.cfg.Auth.PermissionsFile))
			mask, err := perms.Mask(cmd.Context(), permissions...)
			if err != nil {
				return err
			}

			token, err := auth.IssueToken(auth.Principal{AccountID: accountID, Permission: mask}, a.cfg.Auth.JWTSecret, ttl, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&accountID, "account", 0, "account id")
	cmd.Flags().StringSliceVarP(&permissions, "permission", "p", nil, "permission names to grant")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime, 0 for no expiry")
	return cmd
}
