package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"

	"github.com/pseudofractal/Shiryoku/pkg/compiler"
)

// The relay the tool is built around: Gmail submission over STARTTLS with
// an application password.
const (
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = 587
)

// Sender delivers a fully assembled RFC 5322 message.
type Sender interface {
	// Send delivers raw to the recipients. There is no cancellation
	// contract: a dispatched send runs to completion, success or error.
	Send(ctx context.Context, from string, recipients []string, raw []byte) error
}

// SMTPSender delivers messages through a single authenticated relay.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string // application password, not the account password
}

// NewSMTPSender creates a sender for the given credentials against the
// default relay.
func NewSMTPSender(username, password string) *SMTPSender {
	return &SMTPSender{
		Host:     DefaultSMTPHost,
		Port:     DefaultSMTPPort,
		Username: username,
		Password: password,
	}
}

// Send implements Sender. Transport-level rejections (auth, relay refusal,
// network errors) surface as ErrDelivery and are never retried here.
func (s *SMTPSender) Send(_ context.Context, from string, recipients []string, raw []byte) error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)

	if err := smtp.SendMail(addr, auth, from, recipients, raw); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}

// Deliver compiles the assemble-then-send flow into one call: the message
// tree is built in memory and handed to the transport only if assembly
// (including address validation) succeeded.
func (a *Assembler) Deliver(ctx context.Context, sender Sender, doc *compiler.CompiledDocument, p AssembleParams) error {
	var buf bytes.Buffer
	if err := a.Assemble(&buf, doc, p); err != nil {
		return err
	}
	return sender.Send(ctx, p.SenderAddress, []string{p.RecipientAddress}, buf.Bytes())
}
