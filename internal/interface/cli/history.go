package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyUser  int64
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved profiles, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of profiles")
	historyCmd.Flags().Int64Var(&historyUser, "user", 1, "owner id")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if astroService == nil {
		return errors.New("astro service not configured")
	}
	records, err := astroService.History(context.Background(), historyUser, historyLimit)
	if err != nil {
		return fmt.Errorf("history failed: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No saved profiles.")
		return nil
	}
	for _, r := range records {
		cmd.Printf("[%d] %s %s %s: sun %s, ascendant %s, moon %s\n",
			r.ID, r.BirthDate, r.BirthTime, r.BirthPlace,
			r.Result.ZodiacSign, r.Result.Ascendant, r.Result.MoonSign)
	}
	return nil
}
