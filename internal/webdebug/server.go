// Package webdebug serves the resolved configuration over HTTP for
// inspection while a scenario is being edited. It keeps the last
// successfully resolved report: a reload that fails validation reports the
// error but never replaces known-good state.
package webdebug

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hostbridge/appgate/internal/confhost"
	"github.com/hostbridge/appgate/internal/scenario"
	"github.com/hostbridge/appgate/pkg/gateconf"
)

const (
	defaultListen     = "127.0.0.1:3311"
	defaultDebounceMs = 300
)

type Options struct {
	ScenarioPath string
	Listen       string
	AutoReload   bool
	DebounceMs   int
	Logger       *slog.Logger
}

type Server struct {
	opts Options
	log  *slog.Logger

	mu       sync.Mutex
	result   *confhost.Result
	loadedAt time.Time
}

// New resolves the scenario once and returns a server holding the result.
// The initial resolve must succeed; afterwards failed reloads only surface
// as reload errors.
func New(opts Options) (*Server, error) {
	if strings.TrimSpace(opts.Listen) == "" {
		opts.Listen = defaultListen
	}
	if opts.DebounceMs <= 0 {
		opts.DebounceMs = defaultDebounceMs
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &Server{opts: opts, log: opts.Logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads and re-resolves the scenario, swapping in the new report
// only on success.
func (s *Server) Reload() error {
	sc, err := scenario.Load(s.opts.ScenarioPath)
	if err != nil {
		return err
	}
	res, err := confhost.Apply(sc, s.log)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.result = res
	s.loadedAt = time.Now()
	s.mu.Unlock()
	return nil
}

func (s *Server) snapshot() (*confhost.Result, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.loadedAt
}

// Router builds the HTTP surface.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	v1 := r.Group("/v1")
	v1.GET("/resolved", func(c *gin.Context) {
		res, loadedAt := s.snapshot()
		c.JSON(http.StatusOK, gin.H{
			"scenario":  s.opts.ScenarioPath,
			"loaded_at": loadedAt.UTC().Format(time.RFC3339),
			"resolved":  res,
		})
	})
	v1.GET("/directives", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"directives": directiveList()})
	})
	v1.POST("/reload", func(c *gin.Context) {
		if err := s.Reload(); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

type directiveInfo struct {
	Name       string `json:"name"`
	Arg        string `json:"arg"`
	Contexts   string `json:"contexts"`
	Help       string `json:"help"`
	Deprecated string `json:"deprecated_alias_of,omitempty"`
	Obsolete   bool   `json:"obsolete,omitempty"`
}

func directiveList() []directiveInfo {
	ds := gateconf.Directives()
	out := make([]directiveInfo, 0, len(ds))
	for _, d := range ds {
		arg := "string"
		if d.Kind == gateconf.FlagArg {
			arg = "flag"
		}
		out = append(out, directiveInfo{
			Name:       d.Name,
			Arg:        arg,
			Contexts:   d.Contexts.String(),
			Help:       d.Help,
			Deprecated: d.AliasFor,
			Obsolete:   d.Obsolete,
		})
	}
	return out
}

// Run starts the debug server and blocks. With AutoReload, the scenario
// file is watched and re-resolved on change.
func Run(opts Options) error {
	gin.SetMode(gin.ReleaseMode)
	s, err := New(opts)
	if err != nil {
		return err
	}
	if s.opts.AutoReload {
		closer, err := installAutoReload(s)
		if err != nil {
			return err
		}
		defer func() { _ = closer.Close() }()
	}
	s.log.Info("webdebug listening", "addr", s.opts.Listen, "scenario", s.opts.ScenarioPath)
	return s.Router().Run(s.opts.Listen)
}
