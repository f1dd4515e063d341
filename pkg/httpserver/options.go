package httpserver

import (
	"log/slog"
	"net"
	"time"
)

// Option configures the HTTP server.
type Option func(*options)

type options struct {
	addr              string
	readHeaderTimeout time.Duration
	readTimeout       time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	listener          net.Listener
	logger            *slog.Logger
	onStart           []func(addr string)
}

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(o *options) { o.addr = addr }
}

// WithReadHeaderTimeout bounds the time allowed to read request headers.
func WithReadHeaderTimeout(d time.Duration) Option {
	return positiveDuration("WithReadHeaderTimeout", d, func(o *options) { o.readHeaderTimeout = d })
}

// WithReadTimeout bounds the time allowed to read the entire request.
func WithReadTimeout(d time.Duration) Option {
	return positiveDuration("WithReadTimeout", d, func(o *options) { o.readTimeout = d })
}

// WithWriteTimeout bounds the time allowed to write the response.
func WithWriteTimeout(d time.Duration) Option {
	return positiveDuration("WithWriteTimeout", d, func(o *options) { o.writeTimeout = d })
}

// WithIdleTimeout bounds how long keep-alive connections stay idle.
func WithIdleTimeout(d time.Duration) Option {
	return positiveDuration("WithIdleTimeout", d, func(o *options) { o.idleTimeout = d })
}

// WithShutdownTimeout sets the graceful shutdown deadline.
func WithShutdownTimeout(d time.Duration) Option {
	return positiveDuration("WithShutdownTimeout", d, func(o *options) { o.shutdownTimeout = d })
}

// WithListener serves on an existing listener instead of opening addr.
func WithListener(l net.Listener) Option {
	if l == nil {
		panic("WithListener: nil listener")
	}
	return func(o *options) { o.listener = l }
}

// WithLogger sets the logger for life-cycle events. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStartHook registers a callback invoked with the bound address once the server listens.
func WithStartHook(h func(addr string)) Option {
	if h == nil {
		panic("WithStartHook: nil hook")
	}
	return func(o *options) { o.onStart = append(o.onStart, h) }
}

func positiveDuration(name string, d time.Duration, apply Option) Option {
	if d <= 0 {
		panic(name + ": duration must be > 0")
	}
	return apply
}
