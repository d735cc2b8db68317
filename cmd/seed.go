package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmdrew96/chaoslimba/internal/features"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Install the grammar feature catalog and starter content",
	Long: "Seeds the feature catalog (upserted by key, safe to re-run) and the\n" +
		"starter content set (inserted only into an empty catalog).",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		catalog := features.Catalog()
		if err := s.FeatureRepo().Seed(ctx, catalog); err != nil {
			return fmt.Errorf("seed features: %w", err)
		}
		fmt.Printf("Seeded %d grammar features.\n", len(catalog))

		items := features.StarterContent()
		if err := s.ContentRepo().Seed(ctx, items); err != nil {
			return fmt.Errorf("seed content: %w", err)
		}
		fmt.Printf("Seeded %d content items (skipped if catalog was not empty).\n", len(items))
		return nil
	},
}
