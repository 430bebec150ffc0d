package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gradeline/internal/config"
	"gradeline/internal/storage/pgx"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	cfg *config.Config
	log *logrus.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	a := &app{}
	err := a.rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	var configFile, envFile string

	root := &cobra.Command{
		Use:           "gradeline",
		Short:         "Classroom exercise provisioning and CI grading",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.GetViper(), configFile, envFile)
			if err != nil {
				return err
			}
			logger, err := cfg.Log.NewLogger()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")
	root.PersistentFlags().String("log-level", "", "log level (overrides log.level)")
	root.PersistentFlags().String("log-format", "", "json or text (overrides log.format)")
	_ = viper.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(a.serveCmd())
	root.AddCommand(a.migrateCmd())
	root.AddCommand(a.leaderboardCmd())
	root.AddCommand(a.provisionCmd())
	root.AddCommand(a.tokenCmd())
	return root
}

// withStorage opens the database for the duration of fn.
func (a *app) withStorage(ctx context.Context, fn func(st *pgx.Storage) error) error {
	if err := a.cfg.ValidateDatabase(); err != nil {
		return err
	}

	st, err := pgx.NewPgxStorage(ctx, a.cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer st.Close()

	if err := st.Ping(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	return fn(st)
}

func (a *app) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStorage(cmd.Context(), func(st *pgx.Storage) error {
				if err := st.Migrate(cmd.Context()); err != nil {
					return err
				}
				a.log.Info("schema is up to date")
				return nil
			})
		},
	}
}
