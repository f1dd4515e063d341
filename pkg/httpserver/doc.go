// Package httpserver runs an http.Handler with env-driven timeouts and
// context-driven graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, handler); err != nil {
//		return err
//	}
//
// Run blocks until ctx is cancelled; callers wire signals into ctx with
// signal.NotifyContext.
package httpserver
