package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/swfz/courserepo/internal/formatter"
	"github.com/swfz/courserepo/internal/interactive"
	"github.com/swfz/courserepo/internal/layout"
	"github.com/swfz/courserepo/internal/models"
	"github.com/swfz/courserepo/internal/repository"
	"github.com/swfz/courserepo/internal/store"
	"github.com/swfz/courserepo/internal/web"
)

const shutdownTimeout = 10 * time.Second

// App encapsulates the application logic
type App struct {
	config *Config
	log    zerolog.Logger
	out    io.Writer
}

// New creates a new application instance
func New(config *Config, log zerolog.Logger, out io.Writer) *App {
	return &App{
		config: config,
		log:    log,
		out:    out,
	}
}

// LoadRepositories builds one repository per configured directory.
// A directory that does not exist is reported and skipped; any other failure aborts.
func (a *App) LoadRepositories() ([]*repository.Repository, error) {
	repos := make([]*repository.Repository, 0, len(a.config.Dirs))

	for _, dir := range a.config.Dirs {
		l, err := layout.Resolve(dir, a.config.LayoutPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve layout for %s: %w", dir, err)
		}

		repo, err := repository.New(dir,
			repository.WithLayout(l),
			repository.WithLogger(a.log.With().Str("institution", web.InstitutionName(dir)).Logger()),
		)
		if errors.Is(err, models.ErrNotFound) {
			fmt.Fprintf(a.out, "Error: %v\n", err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", dir, err)
		}

		repos = append(repos, repo)
	}

	if len(repos) == 0 {
		return nil, fmt.Errorf("no institution could be loaded: %w", models.ErrNotFound)
	}

	return repos, nil
}

// Run prints the configured reports for every institution
func (a *App) Run(ctx context.Context) error {
	repos, err := a.LoadRepositories()
	if err != nil {
		return err
	}

	opts := formatter.Options{MaxCellWidth: a.config.MaxCellWidth}

	for i, repo := range repos {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(a.out)
		}

		name := web.InstitutionName(repo.Dir())
		fmt.Fprintf(a.out, "%s Repository\n", name)

		for _, kind := range a.config.Reports {
			report, err := repo.ReportByName(kind)
			if err != nil {
				return err
			}
			if err := formatter.RenderTitled(a.out, name, report, opts); err != nil {
				return fmt.Errorf("failed to render %s report: %w", kind, err)
			}
		}
	}

	return nil
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully
func (a *App) Serve(ctx context.Context) error {
	repos, err := a.LoadRepositories()
	if err != nil {
		return err
	}

	var st store.InstructorStore
	if a.config.DatabaseURL != "" {
		st, err = store.Open(ctx, a.config.DatabaseURL, a.log)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer st.Close()
	}

	router := web.NewServer(repos, st, a.log).Router(web.Options{
		GinMode:        a.config.GinMode,
		AllowedOrigins: a.config.AllowedOrigins,
		RateLimitRPS:   a.config.RateLimitRPS,
		RateLimitBurst: a.config.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", a.config.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", srv.Addr).Int("institutions", len(repos)).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	<-errCh

	a.log.Info().Msg("Server exited")
	return nil
}

// Browse opens the student browser on the first loaded institution
func (a *App) Browse(ctx context.Context) error {
	repos, err := a.LoadRepositories()
	if err != nil {
		return err
	}

	repo := repos[0]
	return interactive.RunBrowser(ctx, web.InstitutionName(repo.Dir()), repo.StudentSummaries())
}

// Lookup runs the CWID prompt against the first loaded institution
func (a *App) Lookup(ctx context.Context, in io.Reader) error {
	repos, err := a.LoadRepositories()
	if err != nil {
		return err
	}

	return interactive.NewRunner(repos[0], in, a.out).Run(ctx)
}
