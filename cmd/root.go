// Package cmd holds the chaoslimba CLI: seeding, stats, and LLM event
// inspection around the adaptive feedback engine.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lmdrew96/chaoslimba/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "chaoslimba",
	Short: "Adaptive feedback engine for language learners",
	Long: "ChaosLimba scores learner submissions, tracks grammar feature exposure,\n" +
		"and targets weak features with destabilization challenges.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LIMBA_DB env var)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LIMBA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
