package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lmdrew96/chaoslimba/internal/config"
	"github.com/lmdrew96/chaoslimba/internal/engine"
	"github.com/lmdrew96/chaoslimba/internal/llm"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge <user-id>",
	Short: "Run one destabilization challenge in the terminal",
	Long: "Picks the user's weakest grammar feature, generates an exercise at\n" +
		"their current tier, evaluates the typed response, and records the outcome.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := args[0]
		level, _ := cmd.Flags().GetString("level")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		llmCfg, found := llm.DiscoverConfig()
		if !found {
			llmCfg = llm.ConfigFromEnv()
		}
		provider, err := llm.NewProvider(ctx, llmCfg, s.EventRepo(), slog.Default())
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}
		embedder, err := llm.NewEmbedder(ctx, llmCfg)
		if err != nil {
			// No embeddings just means lexical semantic fallback.
			embedder = nil
		}

		eng := engine.New(engine.Options{
			Store:    s,
			Provider: provider,
			Embedder: embedder,
			Config:   cfg,
		})
		defer eng.Close()

		target, ch, err := eng.NewChallenge(ctx, userID, level)
		if err != nil {
			return err
		}

		fmt.Printf("Feature: %s (tier %d, %s)\n\n", target.Feature.FeatureName, target.Tier, target.Reason)
		fmt.Println(ch.Prompt)
		for i, choice := range ch.Choices {
			fmt.Printf("  %d. %s\n", i+1, choice)
		}
		if ch.Hint != "" {
			fmt.Printf("\nHint: %s\n", ch.Hint)
		}

		fmt.Print("\n> ")
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}
		response = strings.TrimSpace(response)

		eval, newTier, err := eng.ScoreChallenge(ctx, userID, level, ch, response)
		if err != nil {
			return err
		}

		if eval.Correct {
			fmt.Printf("\nCorrect (%.0f). %s\n", eval.Score, eval.Feedback)
		} else {
			fmt.Printf("\nNot quite (%.0f). %s\n", eval.Score, eval.Feedback)
			if eval.CorrectedResponse != "" {
				fmt.Printf("Corrected: %s\n", eval.CorrectedResponse)
			}
		}
		fmt.Printf("Tier for %s is now %d.\n", target.Feature.FeatureKey, newTier)
		return nil
	},
}

func init() {
	challengeCmd.Flags().String("level", "A2", "Learner CEFR level (A1-C2)")
	rootCmd.AddCommand(challengeCmd)
}
