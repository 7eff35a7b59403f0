package sitemap

// Config holds the sitemap source settings.
type Config struct {
	// URL is the absolute URL of the XML sitemap.
	URL string `mapstructure:"url" default:""`
}
