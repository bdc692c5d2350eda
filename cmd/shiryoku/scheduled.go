package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pseudofractal/Shiryoku/pkg/worker"
)

var (
	scheduledRecipient string
	scheduledStatus    string

	cancelID string
)

var scheduledCmd = &cobra.Command{
	Use:   "scheduled",
	Short: "List jobs the worker is holding for future delivery",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := worker.New(cfg.WorkerURL, cfg.APISecret, log)
		jobs, err := client.Scheduled(cmd.Context())
		if err != nil {
			return err
		}

		filtered := worker.FilterJobs(jobs, scheduledRecipient, worker.JobStatus(scheduledStatus))
		if len(filtered) == 0 {
			fmt.Println("No scheduled jobs.")
			return nil
		}

		for _, job := range filtered {
			fmt.Printf("%-12s %-8s %-30s %-25s %s\n",
				job.ID, job.Status, job.Recipient, job.Subject,
				job.ScheduledAt.Format("2006-01-02 15:04 MST"))
		}
		return nil
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel a scheduled job",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cancelID == "" {
			return fmt.Errorf("--id is required")
		}
		client := worker.New(cfg.WorkerURL, cfg.APISecret, log)
		if err := client.Cancel(cmd.Context(), cancelID); err != nil {
			return err
		}
		fmt.Println("Job cancelled.")
		return nil
	},
}

func init() {
	scheduledCmd.Flags().StringVar(&scheduledRecipient, "recipient", "", "filter by recipient substring")
	scheduledCmd.Flags().StringVar(&scheduledStatus, "status", "", "filter by status: Pending, Sent, or Failed")

	cancelCmd.Flags().StringVar(&cancelID, "id", "", "job id to cancel")
}
