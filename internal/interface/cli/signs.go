package cli

import (
	"github.com/spf13/cobra"

	"github.com/yanqian/astro-profile/internal/domain/astro"
)

var signsCmd = &cobra.Command{
	Use:   "signs",
	Short: "List the zodiac signs and their ecliptic ranges",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		signs := astro.AllSigns()
		if astroService != nil {
			signs = astroService.Signs()
		}
		for _, s := range signs {
			cmd.Printf("%-12s %3.0f - %3.0f\n", s.Sign, s.StartDeg, s.EndDeg)
		}
	},
}

func init() {
	rootCmd.AddCommand(signsCmd)
}
