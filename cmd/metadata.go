package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// metadataCmd prints the stored metadata.
var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Print the stored sync metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		rt, err := loadBootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		md, err := rt.buildComponents().sync.Metadata(ctx)
		if err != nil {
			return fmt.Errorf("failed to read metadata: %w", err)
		}
		if md == nil {
			return fmt.Errorf("no metadata found")
		}
		return printJSON(md)
	},
}

func init() {
	RootCmd.AddCommand(metadataCmd)
}
