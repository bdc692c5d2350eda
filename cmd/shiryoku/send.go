package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pseudofractal/Shiryoku/pkg/compiler"
	"github.com/pseudofractal/Shiryoku/pkg/config"
	"github.com/pseudofractal/Shiryoku/pkg/dispatch"
	"github.com/pseudofractal/Shiryoku/pkg/mailer"
)

var errEmptyRecipient = errors.New("draft has no recipient; run compose --to first")

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Compile the current draft and deliver it over SMTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := config.LoadDraft()
		if err != nil {
			return err
		}
		if draft.Recipient == "" {
			return errEmptyRecipient
		}

		doc, err := compiler.Compile(draft, cfg.Identity, cfg.WorkerURL)
		if err != nil {
			return err
		}

		assembler := mailer.NewAssembler(log)
		sender := &mailer.SMTPSender{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPAppPassword,
		}
		params := mailer.AssembleParams{
			SenderName:       cfg.Identity.Name,
			SenderAddress:    cfg.SMTPUsername,
			RecipientAddress: draft.Recipient,
			Subject:          draft.Subject,
		}

		out := dispatch.Run(cmd.Context(), dispatch.KindSend, func(ctx context.Context) error {
			return assembler.Deliver(ctx, sender, doc, params)
		})
		if outcome := <-out; outcome.Err != nil {
			return outcome.Err
		}

		if err := config.ClearDraft(); err != nil {
			log.Warn("draft cleanup failed", "error", err)
		}
		fmt.Printf("Sent to %s\n", draft.Recipient)
		return nil
	},
}
