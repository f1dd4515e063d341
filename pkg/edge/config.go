package edge

import (
	"github.com/dmitrymomot/docsedge/pkg/httpserver"
	"github.com/dmitrymomot/docsedge/pkg/redirect"
)

// Config is the full edge configuration, read from the environment.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"docsedge"`
	Version     string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel    string `env:"LOG_LEVEL"`

	HTTP httpserver.Config

	SiteDir       string `env:"SITE_DIR" envDefault:"dist"`
	LanguagesFile string `env:"LANGUAGES_FILE"`
	RedirectsFile string `env:"REDIRECTS_FILE"`

	MatcherFile    string   `env:"MATCHER_FILE"`
	ManualRoutes   []string `env:"MANUAL_ROUTES" envSeparator:","`
	MatcherExclude []string `env:"MATCHER_EXCLUDE" envSeparator:"," envDefault:"pagefind"`
	APIReference   bool     `env:"ENABLE_API_REFERENCE" envDefault:"false"`

	MarkdownRedirect bool `env:"MARKDOWN_REDIRECT" envDefault:"true"`
	Markdown         redirect.MarkdownConfig

	Networks          []string `env:"NETWORKS" envSeparator:"," envDefault:"mainnet,testnet,devnet"`
	DefaultNetwork    string   `env:"DEFAULT_NETWORK" envDefault:"mainnet"`
	NetworkPathPrefix string   `env:"NETWORK_PATH_PREFIX" envDefault:"/move-reference"`

	MetricsPath string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// DefaultConfig mirrors the envDefault values, for callers that build Config in code.
func DefaultConfig() Config {
	network := redirect.DefaultNetworkConfig()
	return Config{
		AppEnv:            "development",
		ServiceName:       "docsedge",
		Version:           "dev",
		SiteDir:           "dist",
		MatcherExclude:    []string{"pagefind"},
		MarkdownRedirect:  true,
		Markdown:          redirect.DefaultMarkdownConfig(),
		Networks:          network.Networks,
		DefaultNetwork:    network.Default,
		NetworkPathPrefix: network.PathPrefix,
		MetricsPath:       "/metrics",
	}
}

func (c Config) networkConfig() redirect.NetworkConfig {
	nc := redirect.DefaultNetworkConfig()
	nc.Networks = c.Networks
	if c.DefaultNetwork != "" {
		nc.Default = c.DefaultNetwork
	}
	if c.NetworkPathPrefix != "" {
		nc.PathPrefix = c.NetworkPathPrefix
	}
	return nc
}
