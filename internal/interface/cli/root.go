// Package cli implements the astro command line tool.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/astro-profile/internal/domain/astro"
	"github.com/yanqian/astro-profile/internal/infra/daylight"
	"github.com/yanqian/astro-profile/internal/infra/ephemeris/meeus"
	"github.com/yanqian/astro-profile/internal/infra/profilerepo"
	"github.com/yanqian/astro-profile/internal/infra/signstats"
	"github.com/yanqian/astro-profile/pkg/logger"
)

var (
	version = "dev"

	dbPath          string
	logLevel        string
	defaultTimezone string

	astroService astro.Service
	closeService func() error
)

var rootCmd = &cobra.Command{
	Use:   "astro",
	Short: "Compute sun, moon and ascendant signs for a birth moment",
	Long: `astro computes the sun position, zodiac sign, ascendant and moon sign
for a birth date, time and place. Results can be saved to a local SQLite
database and listed later.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupService,
	PersistentPostRunE: teardownService,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database file (in-memory when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&defaultTimezone, "default-tz", "UTC", "timezone applied when --tz is not given")
}

// SetVersion sets the string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setupService builds the astro service unless one was injected already.
func setupService(cmd *cobra.Command, _ []string) error {
	if astroService != nil {
		return nil
	}
	log := logger.NewWithWriter(cmd.ErrOrStderr(), logLevel)

	var repo astro.Repository = profilerepo.NewMemoryRepository()
	closeService = func() error { return nil }
	if path := strings.TrimSpace(dbPath); path != "" {
		sqliteRepo, err := profilerepo.NewSQLiteRepository(path)
		if err != nil {
			return fmt.Errorf("opening profile database: %w", err)
		}
		repo = sqliteRepo
		closeService = sqliteRepo.Close
	}

	astroService = newService(repo, log)
	return nil
}

func teardownService(_ *cobra.Command, _ []string) error {
	if closeService == nil {
		return nil
	}
	err := closeService()
	closeService = nil
	astroService = nil
	return err
}

func newService(repo astro.Repository, log *slog.Logger) astro.Service {
	cfg := astro.Config{DefaultTimezone: defaultTimezone, HistoryLimit: 100, TrendingLimit: 12}
	engine := astro.NewEngine(meeus.NewProvider())
	return astro.NewService(cfg, engine, repo, signstats.NewMemoryStore(), daylight.NewSunriseClock(), log)
}
