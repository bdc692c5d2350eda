package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pseudofractal/Shiryoku/pkg/config"
	"github.com/pseudofractal/Shiryoku/pkg/logger"
)

var (
	cfg     config.Config
	log     *slog.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "shiryoku",
	Short: "Markdown drafts into trackable, schedulable email",
	Long: `Shiryoku compiles a markdown draft into a multipart email with
inline images, a signature footer, and an open-tracking beacon, then either
delivers it over SMTP or schedules it with a remote worker for a future
instant in any timezone.

Typical flow:
  shiryoku compose --to someone@example.com --subject "Hello"
  shiryoku send
  shiryoku schedule --day 24 --month 12 --year 2026 --hour 09 --tz Europe/Oslo
  shiryoku logs --min-opens 2`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Secrets may live in a .env next to the working directory.
		_ = godotenv.Load()

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		log = logger.New(level)

		var err error
		cfg, err = config.Load()
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(deleteLogsCmd)
	rootCmd.AddCommand(scheduledCmd)
	rootCmd.AddCommand(cancelCmd)
}
