package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/docsedge/pkg/i18n"
	"github.com/dmitrymomot/docsedge/pkg/logger"
	"github.com/dmitrymomot/docsedge/pkg/redirect"
	"github.com/dmitrymomot/docsedge/pkg/routematcher"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "matchergen:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("matchergen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	contentDir := fs.String("content", "src/content/docs", "directory with one subdirectory per docs section")
	pagesDir := fs.String("pages", "src/pages/[...lang]", "directory with standalone pages")
	languagesFile := fs.String("languages", "", "languages YAML file (built-in set when empty)")
	redirectsFile := fs.String("redirects", "", "redirect rules YAML file")
	manual := fs.String("manual", "", "comma-separated extra route patterns")
	exclude := fs.String("exclude", "", "comma-separated directory names to skip")
	apiReference := fs.Bool("api-reference", os.Getenv("ENABLE_API_REFERENCE") == "true", "include /api-reference/:path*")
	out := fs.String("out", "matcher-routes.yaml", "output file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	log := logger.New(
		logger.WithFormat(logger.FormatText),
		logger.WithOutput(stderr),
		logger.WithAttr(logger.Component("matchergen")),
	)

	langs := i18n.DefaultLanguages()
	if *languagesFile != "" {
		l, err := i18n.LoadLanguagesFile(*languagesFile)
		if err != nil {
			return err
		}
		langs = l
	}

	var froms []string
	if *redirectsFile != "" {
		rules, err := redirect.LoadRules(*redirectsFile)
		if err != nil {
			return err
		}
		froms = redirect.Froms(redirect.ExpandRules(rules, langs))
	}

	routes, err := routematcher.Generate(routematcher.GenerateOptions{
		ContentDir:    *contentDir,
		PagesDir:      *pagesDir,
		Languages:     langs,
		APIReference:  *apiReference,
		Manual:        splitList(*manual),
		RedirectFroms: froms,
		Exclude:       splitList(*exclude),
	})
	if err != nil {
		return err
	}
	for _, w := range routes.Warnings {
		log.WarnContext(ctx, w)
	}

	if err := routematcher.WriteFile(*out, routes); err != nil {
		return err
	}

	log.InfoContext(ctx, "matcher routes generated",
		slog.String("out", *out),
		logger.Count(len(routes.Patterns)),
		slog.Int("redirects", len(froms)),
	)
	return nil
}

func splitList(s string) []string {
	var items []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
