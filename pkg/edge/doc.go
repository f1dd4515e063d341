// Package edge wires the locale redirect chain in front of a statically built
// documentation site.
//
// Requests flow through request IDs, metrics and access logging, then, for
// paths covered by the route matcher, through the redirect stages in a fixed
// order: markdown source, static rules, default-locale canonicalization,
// visitor locale, and network selection. Whatever no stage answers is served
// from the site directory.
//
//	var cfg edge.Config
//	config.MustLoad(&cfg)
//	app, err := edge.New(cfg, edge.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	return app.Run(ctx)
package edge
