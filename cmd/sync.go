package cmd

import (
	"context"
	"fmt"
	"os"

	"sitemap-sync/core/reconcile"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRunSync bool

// syncCmd runs a single sync and prints the result.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync and print the result as JSON",
	Long: `Fetches the sitemap and redirect lists, compares their fingerprint with the
stored metadata and rewrites the stored URL list when it changed.
With --dry-run the writes are planned and printed but not executed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd.Context())
	},
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Plan the writes without executing them")
	RootCmd.AddCommand(syncCmd)
}

func runSync(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := loadBootstrap()
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	comps := rt.buildComponents()
	result, err := comps.sync.SyncWithOptions(ctx, reconcile.Options{DryRun: dryRunSync})
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	rt.logger.Info("Sync finished",
		zap.String("status", string(result.Status)),
		zap.Int("urls", result.TotalURLs),
		zap.Int("urls_added", result.URLsAdded),
		zap.Bool("dry_run", result.DryRun))

	return printJSON(result)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
