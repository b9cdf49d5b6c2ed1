// Package web serves the instructor summary page and a read-only JSON API
// over one or more loaded repositories.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/swfz/courserepo/internal/models"
	"github.com/swfz/courserepo/internal/repository"
	"github.com/swfz/courserepo/internal/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	summaryCacheKey = "instructor_summary"
	summaryCacheTTL = 30 * time.Second
)

// Options configures the router
type Options struct {
	GinMode        string
	AllowedOrigins []string // Empty allows all origins
	RateLimitRPS   float64
	RateLimitBurst int
}

// Server exposes repositories over HTTP. Repositories are read-only once built,
// so handlers share them without locking.
type Server struct {
	repos map[string]*repository.Repository
	names []string // Institution names in load order
	store store.InstructorStore
	cache *cache.Cache // Store query results
	log   zerolog.Logger
}

// NewServer indexes repositories by institution name (the base name of their directory).
// A nil store makes the instructor summary page use the first repository instead.
func NewServer(repos []*repository.Repository, st store.InstructorStore, log zerolog.Logger) *Server {
	s := &Server{
		repos: make(map[string]*repository.Repository, len(repos)),
		store: st,
		cache: cache.New(summaryCacheTTL, 0), // No janitor goroutine
		log:   log,
	}
	for _, repo := range repos {
		name := InstitutionName(repo.Dir())
		if _, dup := s.repos[name]; dup {
			log.Warn().Str("institution", name).Msg("Duplicate institution name, keeping the first")
			continue
		}
		s.repos[name] = repo
		s.names = append(s.names, name)
	}
	return s
}

// InstitutionName derives the display name of an institution from its directory
func InstitutionName(dir string) string {
	return filepath.Base(filepath.Clean(dir))
}

// Router builds the gin engine with every route and middleware attached
func (s *Server) Router(opts Options) *gin.Engine {
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(opts.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = opts.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{headerRequestID}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(RequestID())
	router.Use(RequestLogger(s.log))
	router.Use(NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).Middleware())

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	router.GET("/health", func(c *gin.Context) {
		success(c, gin.H{"status": "ok"})
	})
	router.GET("/instructor_summary", s.instructorSummaryPage)

	api := router.Group("/api/v1")
	{
		api.GET("/institutions", s.listInstitutions)
		api.GET("/institutions/:institution/reports/:kind", s.getReport)
		api.GET("/institutions/:institution/students/:cwid", s.getStudent)
	}

	return router
}

func (s *Server) repository(name string) (*repository.Repository, error) {
	repo, ok := s.repos[name]
	if !ok {
		return nil, fmt.Errorf("institution %q: %w", name, models.ErrNotFound)
	}
	return repo, nil
}

func (s *Server) listInstitutions(c *gin.Context) {
	success(c, gin.H{"institutions": s.names})
}

func (s *Server) getReport(c *gin.Context) {
	repo, err := s.repository(c.Param("institution"))
	if err != nil {
		failErr(c, err)
		return
	}

	kind, err := models.ParseReportKind(c.Param("kind"))
	if err != nil {
		failErr(c, err)
		return
	}

	var rows any
	switch kind {
	case models.ReportMajors:
		rows = repo.MajorSummaries()
	case models.ReportInstructors:
		rows = repo.InstructorSummaries()
	case models.ReportStudents:
		rows = repo.StudentSummaries()
	}

	success(c, gin.H{
		"kind":    kind,
		"headers": kind.Headers(),
		"rows":    rows,
	})
}

func (s *Server) getStudent(c *gin.Context) {
	repo, err := s.repository(c.Param("institution"))
	if err != nil {
		failErr(c, err)
		return
	}

	summary, err := repo.StudentSummary(c.Param("cwid"))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, gin.H{"student": summary})
}

// instructorSummaryPage renders the HTML instructor summary, from the database when one is configured
func (s *Server) instructorSummaryPage(c *gin.Context) {
	title, rows, err := s.instructorSummary(c)
	if errors.Is(err, models.ErrNotFound) {
		c.String(http.StatusNotFound, "Error: %v", err)
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("Instructor summary failed")
		c.String(http.StatusInternalServerError, "Error: unable to load instructor summary")
		return
	}

	c.HTML(http.StatusOK, "instructor_summary.html", gin.H{
		"title":       title + " Repository",
		"table_title": "Instructor Summary",
		"instructors": rows,
	})
}

func (s *Server) instructorSummary(c *gin.Context) (string, []models.InstructorSummary, error) {
	if s.store != nil {
		if cached, ok := s.cache.Get(summaryCacheKey); ok {
			return "Database", cached.([]models.InstructorSummary), nil
		}
		rows, err := s.store.InstructorSummaries(c.Request.Context())
		if err != nil {
			return "", nil, err
		}
		s.cache.SetDefault(summaryCacheKey, rows)
		return "Database", rows, nil
	}

	name := c.Query("institution")
	if name == "" && len(s.names) > 0 {
		name = s.names[0]
	}
	repo, err := s.repository(name)
	if err != nil {
		return "", nil, err
	}
	return name, repo.InstructorSummaries(), nil
}
