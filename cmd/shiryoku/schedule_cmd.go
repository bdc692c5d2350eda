package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pseudofractal/Shiryoku/pkg/compiler"
	"github.com/pseudofractal/Shiryoku/pkg/config"
	"github.com/pseudofractal/Shiryoku/pkg/dispatch"
	"github.com/pseudofractal/Shiryoku/pkg/schedule"
	"github.com/pseudofractal/Shiryoku/pkg/worker"
)

var scheduleIn schedule.Input

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Compile the current draft and hand it to the worker for future delivery",
	Long: `Schedule resolves the given local date and time against the named
timezone and submits the compiled draft to the remote worker. Fields left
unset default to today's date and thirty minutes from now in the system
zone. Local times that never existed (DST spring-forward) are rejected;
times that occurred twice resolve to the earlier instant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := config.LoadDraft()
		if err != nil {
			return err
		}
		if draft.Recipient == "" {
			return errEmptyRecipient
		}

		in := schedule.Defaults()
		merge := func(dst *string, src string) {
			if src != "" {
				*dst = src
			}
		}
		merge(&in.Day, scheduleIn.Day)
		merge(&in.Month, scheduleIn.Month)
		merge(&in.Year, scheduleIn.Year)
		merge(&in.Hour, scheduleIn.Hour)
		merge(&in.Minute, scheduleIn.Minute)
		merge(&in.Second, scheduleIn.Second)
		merge(&in.Timezone, scheduleIn.Timezone)

		at, err := schedule.Resolve(in)
		if err != nil {
			return err
		}

		doc, err := compiler.Compile(draft, cfg.Identity, cfg.WorkerURL)
		if err != nil {
			return err
		}

		client := worker.New(cfg.WorkerURL, cfg.APISecret, log)
		req := worker.ScheduleRequest{
			Document:     doc,
			Recipient:    draft.Recipient,
			Subject:      draft.Subject,
			ScheduledAt:  at,
			SMTPUsername: cfg.SMTPUsername,
			SMTPPassword: cfg.SMTPAppPassword,
			SenderName:   cfg.Identity.Name,
		}

		out := dispatch.Run(cmd.Context(), dispatch.KindSchedule, func(ctx context.Context) error {
			return client.Schedule(ctx, req)
		})
		if outcome := <-out; outcome.Err != nil {
			return outcome.Err
		}

		draft.ScheduledAt = &at
		if err := config.SaveDraft(draft); err != nil {
			log.Warn("draft save failed", "error", err)
		}
		fmt.Printf("Scheduled for %s (%s.%s.%s %s:%s %s)\n",
			at.Format(time.RFC3339), in.Day, in.Month, in.Year, in.Hour, in.Minute, in.Timezone)
		return nil
	},
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleIn.Day, "day", "", "day of month")
	scheduleCmd.Flags().StringVar(&scheduleIn.Month, "month", "", "month (1-12)")
	scheduleCmd.Flags().StringVar(&scheduleIn.Year, "year", "", "year")
	scheduleCmd.Flags().StringVar(&scheduleIn.Hour, "hour", "", "hour (0-23)")
	scheduleCmd.Flags().StringVar(&scheduleIn.Minute, "minute", "", "minute")
	scheduleCmd.Flags().StringVar(&scheduleIn.Second, "second", "", "second")
	scheduleCmd.Flags().StringVar(&scheduleIn.Timezone, "tz", "", "IANA timezone name, e.g. Europe/Oslo")
}
