package main

import (
	"context"
	"errors"
	"net/http"

	"gradeline/internal/auth"
	"gradeline/internal/ci/woodpecker"
	"gradeline/internal/forge/gitea"
	"gradeline/internal/service"
	"gradeline/internal/storage/pgx"
	transport "gradeline/internal/transport/http"

	"github.com/spf13/cobra"
)

func (a *app) serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.withStorage(cmd.Context(), func(st *pgx.Storage) error {
				if migrate {
					if err := st.Migrate(cmd.Context()); err != nil {
						return err
					}
				}
				return a.serve(cmd.Context(), st)
			})
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply the schema before serving")
	return cmd
}

func (a *app) newService(st *pgx.Storage, ci service.CIRunner) *service.Service {
	var git service.GitHost
	if a.cfg.Gitea.URL != "" {
		git = gitea.New(a.cfg.Gitea.URL, a.cfg.Gitea.Token, a.cfg.Gitea.Owner, a.cfg.CI.ClientTimeout)
	}

	return service.NewService(
		service.Storages{
			Projects: st,
			Teams:    st,
			Results:  st,
			Accounts: st,
		},
		git,
		ci,
		st, // txManager
		service.Settings{
			PushWebhookURL:   a.cfg.PushWebhookURL(),
			TeamCallbackURL:  a.cfg.TeamCallbackURL(),
			OwnerCallbackURL: a.cfg.OwnerCallbackURL(),
			HookMatch:        a.cfg.CI.HookMatch,
		},
		a.log,
	)
}

func (a *app) serve(ctx context.Context, st *pgx.Storage) error {
	ci := woodpecker.New(a.cfg.Woodpecker.URL, a.cfg.Woodpecker.Token, a.cfg.CI.ClientTimeout)
	svc := a.newService(st, ci)

	perms := auth.NewPermissionCache(auth.FilePermissions(a.cfg.Auth.PermissionsFile))
	authenticator := auth.NewAuthenticator(a.cfg.Auth.JWTSecret, perms, a.log)

	router := transport.NewHandler(
		svc, // EndpointService
		svc, // ProvisioningService
		svc, // ExercisesService
		authenticator,
		a.log,
	)

	srv := &http.Server{
		Addr:         a.cfg.HTTP.Addr,
		Handler:      router.Routes(),
		ReadTimeout:  a.cfg.HTTP.ReadTimeout,
		WriteTimeout: a.cfg.HTTP.WriteTimeout,
		IdleTimeout:  a.cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.WithField("addr", a.cfg.HTTP.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	a.log.Info("signal received, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.WithError(err).Error("HTTP server shutdown")
		return err
	}
	a.log.Info("HTTP server gracefully stopped")
	return nil
}
