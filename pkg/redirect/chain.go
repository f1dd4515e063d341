package redirect

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/docsedge/pkg/logger"
)

// Func inspects a request and returns a Response to answer it early,
// or nil to let the next stage decide. A Func must not have side effects.
type Func func(r *http.Request) Response

// Stage is a named Func.
type Stage struct {
	Name string
	Func Func
}

// NewStage pairs a name with a stage function.
func NewStage(name string, fn Func) Stage {
	return Stage{Name: name, Func: fn}
}

// VaryPreference lists the request headers every chain decision depends on.
const VaryPreference = "Cookie, Accept-Language"

// Matcher decides which paths enter the chain. *regexp.Regexp satisfies it.
type Matcher interface {
	MatchString(path string) bool
}

// OutcomeKind classifies what the chain did with a request.
type OutcomeKind string

const (
	// OutcomeBypassed means the path was outside the matcher.
	OutcomeBypassed OutcomeKind = "bypassed"
	// OutcomePassed means every stage let the request through.
	OutcomePassed OutcomeKind = "passed"
	// OutcomeResponded means a stage answered the request.
	OutcomeResponded OutcomeKind = "responded"
)

// Outcome is reported to the Observer once per request.
type Outcome struct {
	Kind   OutcomeKind
	Stage  string
	Status int
}

// Observer receives chain outcomes, typically to record metrics.
type Observer interface {
	Observe(o Outcome)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(o Outcome)

// Observe calls f(o).
func (f ObserverFunc) Observe(o Outcome) { f(o) }

// Apply runs the stages in order and returns the first non-nil response
// together with the name of the stage that produced it.
func Apply(r *http.Request, stages ...Stage) (Response, string) {
	for _, s := range stages {
		if s.Func == nil {
			continue
		}
		if resp := s.Func(r); resp != nil {
			return resp, s.Name
		}
	}
	return nil, ""
}

// Option configures a Chain.
type Option func(*Chain)

// WithMatcher limits the chain to paths accepted by m. A nil matcher accepts everything.
func WithMatcher(m Matcher) Option {
	return func(c *Chain) { c.matcher = m }
}

// WithLogger sets the logger used for decisions and render failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Chain) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers an outcome observer.
func WithObserver(o Observer) Option {
	return func(c *Chain) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// Chain is an ordered, immutable list of stages applied as HTTP middleware.
type Chain struct {
	stages    []Stage
	matcher   Matcher
	logger    *slog.Logger
	observers []Observer
}

// NewChain builds a chain from stages in the order they must run.
func NewChain(stages []Stage, opts ...Option) *Chain {
	c := &Chain{
		stages: append([]Stage(nil), stages...),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stages returns the stage names in execution order.
func (c *Chain) Stages() []string {
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.Name
	}
	return names
}

// Resolve applies the chain to r without writing anything.
// Requests outside the matcher yield no response.
func (c *Chain) Resolve(r *http.Request) (Response, string) {
	if c.matcher != nil && !c.matcher.MatchString(r.URL.Path) {
		return nil, ""
	}
	return Apply(r, c.stages...)
}

// Middleware answers matching requests with the first stage response.
// Matching requests that no stage answers are handed to next with
// Vary set to VaryPreference; paths outside the matcher pass unchanged.
func (c *Chain) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c.matcher != nil && !c.matcher.MatchString(r.URL.Path) {
			c.observe(Outcome{Kind: OutcomeBypassed})
			next.ServeHTTP(w, r)
			return
		}

		resp, stage := Apply(r, c.stages...)
		if resp == nil {
			// the pass-through answer depends on the same signals a redirect would
			w.Header().Add("Vary", VaryPreference)
			c.observe(Outcome{Kind: OutcomePassed})
			next.ServeHTTP(w, r)
			return
		}

		status := 0
		if sc, ok := resp.(StatusCoder); ok {
			status = sc.StatusCode()
		}

		c.logger.DebugContext(r.Context(), "request answered by middleware",
			logger.Stage(stage),
			logger.Path(r.URL.Path),
			logger.Status(status),
		)

		tw := &trackingWriter{ResponseWriter: w}
		if err := resp.Render(tw, r); err != nil {
			c.logger.ErrorContext(r.Context(), "failed to render middleware response",
				logger.Stage(stage),
				logger.Path(r.URL.Path),
				logger.Error(err),
			)
			if !tw.wroteHeader {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				status = http.StatusInternalServerError
			}
		}

		c.observe(Outcome{Kind: OutcomeResponded, Stage: stage, Status: status})
	})
}

func (c *Chain) observe(o Outcome) {
	for _, obs := range c.observers {
		obs.Observe(o)
	}
}

type trackingWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *trackingWriter) WriteHeader(code int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *trackingWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
