// Package redirect implements the request middleware chain that sits in front of
// the documentation site.
//
// A chain is an ordered list of stages. Each stage is a pure function from a
// request to an optional Response; the first stage that returns a response
// answers the request and the remaining stages are skipped. When no stage
// answers, the request reaches the site handler unchanged. Stages read nothing
// but the request and their immutable configuration, so re-running the chain
// for a retried request gives the same answer.
//
// # Stages
//
//   - Markdown: "/build/cli.md" redirects (302) to the raw page source.
//   - Static: exact-path redirects loaded from a rules file (301 by default).
//   - CanonicalDefault: "/en/..." redirects (301) to the unprefixed path.
//   - Locale: redirects (302) to the language the visitor prefers, based on the
//     preferred_locale cookie and the Accept-Language header.
//   - Network: keeps the reference section on the preferred network (302).
//
// # Usage
//
//	chain := redirect.NewChain([]redirect.Stage{
//		redirect.NewStage("markdown", redirect.Markdown(redirect.DefaultMarkdownConfig())),
//		redirect.NewStage("canonical", redirect.CanonicalDefault(langs)),
//		redirect.NewStage("locale", redirect.Locale(langs)),
//	}, redirect.WithMatcher(matcher), redirect.WithLogger(log))
//
//	http.Handle("/", chain.Middleware(site))
//
// Requests whose path is not accepted by the matcher bypass the chain entirely.
package redirect
