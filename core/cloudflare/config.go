package cloudflare

// Config holds the Cloudflare account settings.
type Config struct {
	// AccountID is the Cloudflare account identifier.
	AccountID string `mapstructure:"account_id" default:""`
	// NamespaceID is the Workers KV namespace holding the URL list.
	NamespaceID string `mapstructure:"namespace_id" default:""`
	// APIToken is the bearer token used for KV calls.
	APIToken string `mapstructure:"api_token" default:""`
	// Email is the account email used for rule list calls.
	Email string `mapstructure:"email" default:""`
	// GlobalAPIKey is the global API key paired with Email.
	GlobalAPIKey string `mapstructure:"global_api_key" default:""`
	// BaseURL is the Cloudflare API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.cloudflare.com/client/v4"`
}
