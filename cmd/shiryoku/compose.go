package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pseudofractal/Shiryoku/pkg/config"
	"github.com/pseudofractal/Shiryoku/pkg/editor"
)

var (
	composeTo       string
	composeSubject  string
	composeAttach   []string
	composeBodyFile string
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Edit the current draft",
	Long: `Compose updates the persisted draft. Recipient, subject, and
attachments are set from flags; the body opens in $VISUAL or $EDITOR unless
--body-file supplies it directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := config.LoadDraft()
		if err != nil {
			return err
		}

		if composeTo != "" {
			draft.Recipient = composeTo
		}
		if composeSubject != "" {
			draft.Subject = composeSubject
		}
		if len(composeAttach) > 0 {
			draft.Attachments = append(draft.Attachments, composeAttach...)
		}

		if composeBodyFile != "" {
			body, err := os.ReadFile(composeBodyFile)
			if err != nil {
				return fmt.Errorf("reading body file: %w", err)
			}
			draft.Body = string(body)
		} else {
			body, err := editor.Edit(draft.Body)
			if err != nil {
				return err
			}
			draft.Body = body
		}

		if err := config.SaveDraft(draft); err != nil {
			return err
		}
		fmt.Printf("Draft saved: to=%q subject=%q attachments=%d\n",
			draft.Recipient, draft.Subject, len(draft.Attachments))
		return nil
	},
}

func init() {
	composeCmd.Flags().StringVar(&composeTo, "to", "", "recipient address")
	composeCmd.Flags().StringVar(&composeSubject, "subject", "", "subject line")
	composeCmd.Flags().StringArrayVar(&composeAttach, "attach", nil, "attachment path (repeatable)")
	composeCmd.Flags().StringVar(&composeBodyFile, "body-file", "", "read the markdown body from a file instead of an editor")
}
