// Package config provides configuration management for the sitemap sync service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Keys are nested by section and map to SECTION_KEY variables
// (cloudflare.account_id -> CLOUDFLARE_ACCOUNT_ID).
//
// # Configuration Structure
//
//   - Server: HTTP port and optional API key
//   - Log: Logging level and format
//   - Cloudflare: account, KV namespace, API token, email/global key pair
//   - Sitemap: sitemap URL
//   - Cache: path check cache TTL
//   - Storage: optional snapshot archive (S3/MinIO)
//   - Database: optional sync history (MySQL)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err) // *syncerr.ConfigError listing missing variables
//	}
package config
