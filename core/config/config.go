package config

import (
	"reflect"
	"strings"

	"sitemap-sync/core/cloudflare"
	"sitemap-sync/core/database"
	"sitemap-sync/core/logger"
	"sitemap-sync/core/server"
	"sitemap-sync/core/sitemap"
	"sitemap-sync/core/storage"
	"sitemap-sync/core/syncerr"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Cloudflare holds the account, KV namespace and credentials.
	Cloudflare cloudflare.Config `mapstructure:"cloudflare"`
	// Sitemap holds the sitemap source.
	Sitemap sitemap.Config `mapstructure:"sitemap"`
	// Cache holds the path check cache settings.
	Cache CacheConfig `mapstructure:"cache"`
	// Storage holds configuration for the snapshot archive (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the sync history database.
	Database database.Config `mapstructure:"database"`
}

// CacheConfig holds configuration for the stored URL list cache.
type CacheConfig struct {
	// TTLSeconds is how long a fetched URL list is reused.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"86400"`
	// Size is the maximum number of cached entries.
	Size int `mapstructure:"size" default:"8"`
}

// envAliases maps config keys to legacy environment variable names that are
// still honored after the canonical SECTION_KEY name.
var envAliases = map[string][]string{
	"cloudflare.global_api_key": {"GLOBAL_API_TOKEN"},
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Load(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, aliases := range envAliases {
		names := append([]string{envName(key)}, aliases...)
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate reports every missing required value as a *syncerr.ConfigError.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"cloudflare.account_id", c.Cloudflare.AccountID},
		{"cloudflare.namespace_id", c.Cloudflare.NamespaceID},
		{"cloudflare.api_token", c.Cloudflare.APIToken},
		{"cloudflare.email", c.Cloudflare.Email},
		{"cloudflare.global_api_key", c.Cloudflare.GlobalAPIKey},
		{"sitemap.url", c.Sitemap.URL},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, envName(r.key))
		}
	}
	if len(missing) > 0 {
		return &syncerr.ConfigError{Missing: missing}
	}
	return nil
}

// envName returns the environment variable bound to a config key.
func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
