package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lmdrew96/chaoslimba/internal/config"
	"github.com/lmdrew96/chaoslimba/internal/exposure"
)

var statsCmd = &cobra.Command{
	Use:   "stats <user-id>",
	Short: "Show a user's feature exposure and proficiency trend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := args[0]

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		cfg := config.Default()

		stats, err := s.ExposureRepo().FeatureStats(ctx, userID)
		if err != nil {
			return fmt.Errorf("query exposure stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No exposure history for this user.")
		} else {
			keys := make([]string, 0, len(stats))
			for k := range stats {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			fmt.Printf("%-28s  %6s  %6s  %6s  %8s  %s\n",
				"Feature", "Enc", "Prod", "Corr", "Weakness", "Last practiced")
			fmt.Println(strings.Repeat("─", 84))

			for _, k := range keys {
				st := stats[k]
				score := exposure.WeaknessScore(st)
				marker := ""
				if score >= cfg.WeaknessThreshold {
					marker = " *"
				}
				last := "never"
				if !st.LastPracticed.IsZero() {
					last = st.LastPracticed.Local().Format("2006-01-02")
				}
				fmt.Printf("%-28s  %6d  %6d  %6d  %7.2f%s  %s\n",
					k, st.Encountered, st.Produced, st.Corrected, score, marker, last)
			}
			fmt.Println("\n* weakness at or above threshold")
		}

		catalog, err := s.FeatureRepo().All(ctx)
		if err != nil {
			return fmt.Errorf("query feature catalog: %w", err)
		}
		var unseen []string
		for _, f := range catalog {
			if _, ok := stats[f.FeatureKey]; !ok {
				unseen = append(unseen, fmt.Sprintf("%s (%s)", f.FeatureKey, f.CEFRLevel))
			}
		}
		if len(unseen) > 0 {
			fmt.Printf("\nNever practiced (%d): %s\n", len(unseen), strings.Join(unseen, ", "))
		}

		records, err := s.ProficiencyRepo().Recent(ctx, userID, 2)
		if err != nil {
			return fmt.Errorf("query proficiency: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("\nNo proficiency records.")
			return nil
		}

		latest := records[0]
		fmt.Printf("\nProficiency: %.1f (%s)", latest.OverallScore, latest.CEFRLevel)
		if len(records) > 1 {
			delta := latest.OverallScore - records[1].OverallScore
			fmt.Printf("  %+.1f since %s", delta, records[1].RecordedAt.Local().Format("2006-01-02"))
		}
		fmt.Println()
		return nil
	},
}
