package edge

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/docsedge/pkg/httpserver"
	"github.com/dmitrymomot/docsedge/pkg/i18n"
	"github.com/dmitrymomot/docsedge/pkg/logger"
	"github.com/dmitrymomot/docsedge/pkg/metrics"
	"github.com/dmitrymomot/docsedge/pkg/redirect"
	"github.com/dmitrymomot/docsedge/pkg/requestid"
	"github.com/dmitrymomot/docsedge/pkg/routematcher"
)

// Stage names, in execution order.
const (
	StageMarkdown  = "markdown"
	StageStatic    = "static"
	StageCanonical = "canonical"
	StageLocale    = "locale"
	StageNetwork   = "network"
)

// Option customizes App construction.
type Option func(*App)

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// WithLanguages overrides LANGUAGES_FILE.
func WithLanguages(langs *i18n.Languages) Option {
	return func(a *App) { a.langs = langs }
}

// WithSiteFS serves static files from fsys instead of SITE_DIR.
// The route matcher is still generated from SITE_DIR when no matcher file is set.
func WithSiteFS(fsys fs.FS) Option {
	return func(a *App) { a.site = fsys }
}

// App is the docs edge: redirect chain in front of the static site.
type App struct {
	cfg     Config
	log     *slog.Logger
	langs   *i18n.Languages
	rules   []redirect.Rule
	matcher *routematcher.Matcher
	chain   *redirect.Chain
	metrics *metrics.Metrics
	site    fs.FS
	router  chi.Router
}

// New loads languages, redirect rules and the route matcher, and assembles the router.
func New(cfg Config, opts ...Option) (*App, error) {
	a := &App{
		cfg: cfg,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(logger.Component("edge"))

	if err := a.loadLanguages(); err != nil {
		return nil, err
	}
	if err := a.loadRules(); err != nil {
		return nil, err
	}
	if err := a.loadMatcher(); err != nil {
		return nil, err
	}

	stages, err := a.stages()
	if err != nil {
		return nil, err
	}

	a.metrics = metrics.New(cfg.ServiceName, cfg.Version)
	a.chain = redirect.NewChain(stages,
		redirect.WithMatcher(a.matcher),
		redirect.WithLogger(a.log),
		redirect.WithObserver(a.metrics),
	)

	if a.site == nil {
		a.site = os.DirFS(cfg.SiteDir)
	}
	a.router = a.routes()

	a.log.Info("edge configured",
		slog.Any("stages", a.chain.Stages()),
		slog.Any("languages", a.langs.Codes()),
		logger.Count(len(a.rules)),
	)

	return a, nil
}

func (a *App) loadLanguages() error {
	if a.langs != nil {
		return nil
	}
	if a.cfg.LanguagesFile == "" {
		a.langs = i18n.DefaultLanguages()
		return nil
	}
	langs, err := i18n.LoadLanguagesFile(a.cfg.LanguagesFile)
	if err != nil {
		return errors.Join(ErrLoadLanguages, err)
	}
	a.langs = langs
	return nil
}

func (a *App) loadRules() error {
	if a.cfg.RedirectsFile == "" {
		return nil
	}
	rules, err := redirect.LoadRules(a.cfg.RedirectsFile)
	if err != nil {
		return errors.Join(ErrLoadRedirects, err)
	}
	a.rules = redirect.ExpandRules(rules, a.langs)
	return nil
}

func (a *App) loadMatcher() error {
	var routes routematcher.Routes

	if a.cfg.MatcherFile != "" {
		r, err := routematcher.ReadFile(a.cfg.MatcherFile)
		if err != nil {
			return errors.Join(ErrLoadMatcher, err)
		}
		routes = r
	} else {
		r, err := routematcher.Generate(routematcher.GenerateOptions{
			ContentDir:    a.cfg.SiteDir,
			PagesDir:      a.cfg.SiteDir,
			Languages:     a.langs,
			APIReference:  a.cfg.APIReference,
			Manual:        a.cfg.ManualRoutes,
			RedirectFroms: redirect.Froms(a.rules),
			Exclude:       a.cfg.MatcherExclude,
		})
		if err != nil {
			return errors.Join(ErrLoadMatcher, err)
		}
		for _, w := range r.Warnings {
			a.log.Warn("route matcher", slog.String("warning", w))
		}
		routes = r
	}

	m, err := routes.Matcher()
	if err != nil {
		return errors.Join(ErrLoadMatcher, err)
	}
	a.matcher = m
	return nil
}

func (a *App) stages() ([]redirect.Stage, error) {
	var stages []redirect.Stage

	if a.cfg.MarkdownRedirect {
		md := a.cfg.Markdown
		if md.RawBaseURL == "" || md.Repo == "" {
			md = redirect.DefaultMarkdownConfig()
		}
		stages = append(stages, redirect.NewStage(StageMarkdown, redirect.Markdown(md)))
	}
	if len(a.rules) > 0 {
		stages = append(stages, redirect.NewStage(StageStatic, redirect.Static(a.rules)))
	}
	stages = append(stages,
		redirect.NewStage(StageCanonical, redirect.CanonicalDefault(a.langs)),
		redirect.NewStage(StageLocale, redirect.Locale(a.langs)),
	)

	if len(a.cfg.Networks) > 0 {
		nc := a.cfg.networkConfig()
		if !slices.Contains(nc.Networks, nc.Default) {
			return nil, fmt.Errorf("%w: default network %q is not in %v", ErrInvalidConfig, nc.Default, nc.Networks)
		}
		stages = append(stages, redirect.NewStage(StageNetwork, redirect.Network(nc)))
	}

	return stages, nil
}

func (a *App) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware())
	r.Use(a.metrics.Middleware)
	r.Use(accessLog(a.log))

	r.Get("/healthz", httpserver.HealthHandler(a.log, map[string]httpserver.HealthFunc{
		"site": a.siteReady,
	}))
	if a.cfg.MetricsPath != "" {
		r.Handle(a.cfg.MetricsPath, a.metrics.Handler())
	}

	r.Group(func(r chi.Router) {
		r.Use(a.chain.Middleware)
		r.Use(i18n.Middleware(i18n.PathLocaleExtractor(a.langs), a.langs.DefaultCode()))
		r.Handle("/*", staticSite(a.site, a.langs))
	})

	return r
}

func (a *App) siteReady(context.Context) error {
	_, err := fs.Stat(a.site, "index.html")
	return err
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.router }

// Chain returns the redirect chain.
func (a *App) Chain() *redirect.Chain { return a.chain }

// Languages returns the configured language set.
func (a *App) Languages() *i18n.Languages { return a.langs }

// Metrics returns the application collectors.
func (a *App) Metrics() *metrics.Metrics { return a.metrics }

// Run serves the edge until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	srv := httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(a.log))
	return srv.Run(ctx, a.Handler())
}
