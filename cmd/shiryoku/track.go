package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pseudofractal/Shiryoku/pkg/compiler"
	"github.com/pseudofractal/Shiryoku/pkg/worker"
)

var (
	logsRecipient string
	logsCountry   string
	logsMinOpens  int
	logsDetailed  bool

	deleteTrackingID string
	deleteEmail      string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show open-tracking activity grouped by recipient",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := worker.New(cfg.WorkerURL, cfg.APISecret, log)
		logs, err := client.Logs(cmd.Context())
		if err != nil {
			return err
		}

		summaries := worker.Aggregate(logs, worker.SummaryFilter{
			Recipient: logsRecipient,
			Country:   logsCountry,
			MinOpens:  logsMinOpens,
		})
		if len(summaries) == 0 {
			fmt.Println("No opens recorded.")
			return nil
		}

		for _, s := range summaries {
			fmt.Printf("%-40s opens=%-4d %-15s last=%s\n",
				s.DecodedEmail, s.OpenCount, s.Country, s.LastSeen.Format("2006-01-02 15:04"))
			if logsDetailed {
				for _, l := range s.Logs {
					fmt.Printf("    %s  %s/%s  %s\n",
						l.Timestamp.Format("2006-01-02 15:04"), l.Country, l.City, l.UserAgent)
				}
			}
		}
		return nil
	},
}

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show the recipients and countries the worker has seen",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := worker.New(cfg.WorkerURL, cfg.APISecret, log)
		opts, err := client.Filters(cmd.Context())
		if err != nil {
			return err
		}

		recipients := make([]string, 0, len(opts.Recipients))
		for _, token := range opts.Recipients {
			if email, err := compiler.DecodeToken(token); err == nil {
				recipients = append(recipients, email)
			} else {
				recipients = append(recipients, token)
			}
		}

		fmt.Println("Recipients:", strings.Join(recipients, ", "))
		fmt.Println("Countries: ", strings.Join(opts.Countries, ", "))
		return nil
	},
}

var deleteLogsCmd = &cobra.Command{
	Use:   "delete-logs",
	Short: "Delete all tracking logs for one recipient",
	RunE: func(cmd *cobra.Command, args []string) error {
		id := deleteTrackingID
		if id == "" && deleteEmail != "" {
			id = compiler.Token(deleteEmail)
		}
		if id == "" {
			return fmt.Errorf("either --tracking-id or --email is required")
		}

		client := worker.New(cfg.WorkerURL, cfg.APISecret, log)
		if err := client.DeleteLogs(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("Logs deleted.")
		return nil
	},
}

func init() {
	logsCmd.Flags().StringVar(&logsRecipient, "recipient", "", "filter by decoded address substring")
	logsCmd.Flags().StringVar(&logsCountry, "country", "", "filter by country substring")
	logsCmd.Flags().IntVar(&logsMinOpens, "min-opens", 0, "only show recipients with at least this many opens")
	logsCmd.Flags().BoolVar(&logsDetailed, "detailed", false, "show every open, not just summaries")

	deleteLogsCmd.Flags().StringVar(&deleteTrackingID, "tracking-id", "", "raw tracking token")
	deleteLogsCmd.Flags().StringVar(&deleteEmail, "email", "", "recipient address (encoded for you)")
}
