package mailer

import (
	"fmt"
	"io"
	"log/slog"
	"mime"
	netmail "net/mail"
	"os"
	"path/filepath"
	"time"

	"github.com/emersion/go-message"
	"github.com/emersion/go-message/mail"

	"github.com/pseudofractal/Shiryoku/pkg/compiler"
	"github.com/pseudofractal/Shiryoku/pkg/logger"
)

// AssembleParams carries the envelope metadata for one message.
type AssembleParams struct {
	SenderName       string // optional display name, rendered as "Name" <addr>
	SenderAddress    string
	RecipientAddress string
	Subject          string
}

// Assembler builds the nested multipart document for a compiled email:
//
//	mixed
//	├── related
//	│   ├── alternative
//	│   │   ├── text/plain
//	│   │   └── text/html   (last, so capable renderers prefer it)
//	│   └── one inline part per embedded image, tagged with its content-id
//	└── one part per attachment
//
// Inline image and attachment files that cannot be read are skipped with a
// log line rather than failing the whole message; a dangling cid: reference
// is acceptable degraded output.
type Assembler struct {
	log *slog.Logger
}

// NewAssembler creates an Assembler. A nil log gets a no-op logger.
func NewAssembler(log *slog.Logger) *Assembler {
	if log == nil {
		log = logger.NewNope()
	}
	return &Assembler{log: log}
}

// Assemble validates the addresses and writes the full RFC 5322 message to
// w. Address validation happens before anything is written, so a failed
// call leaves no partial output on a fresh writer.
func (a *Assembler) Assemble(w io.Writer, doc *compiler.CompiledDocument, p AssembleParams) error {
	if _, err := netmail.ParseAddress(p.SenderAddress); err != nil {
		return fmt.Errorf("%w: sender %q: %v", ErrInvalidAddress, p.SenderAddress, err)
	}
	if _, err := netmail.ParseAddress(p.RecipientAddress); err != nil {
		return fmt.Errorf("%w: recipient %q: %v", ErrInvalidAddress, p.RecipientAddress, err)
	}

	var h mail.Header
	h.SetDate(time.Now())
	h.SetSubject(p.Subject)
	h.SetAddressList("From", []*mail.Address{{Name: p.SenderName, Address: p.SenderAddress}})
	h.SetAddressList("To", []*mail.Address{{Address: p.RecipientAddress}})
	h.Set("Mime-Version", "1.0")
	h.SetContentType("multipart/mixed", nil)

	mixed, err := message.CreateWriter(w, h.Header)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAssembleFailed, err)
	}

	if err := a.writeRelated(mixed, doc); err != nil {
		return err
	}

	for _, path := range doc.Attachments {
		a.writeFilePart(mixed, path, "attachment", "")
	}

	if err := mixed.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrAssembleFailed, err)
	}
	return nil
}

// writeRelated writes the related part: the plain/html alternative followed
// by the inline images the HTML references by content-id.
func (a *Assembler) writeRelated(parent *message.Writer, doc *compiler.CompiledDocument) error {
	var relHdr message.Header
	relHdr.SetContentType("multipart/related", map[string]string{"type": "multipart/alternative"})
	related, err := parent.CreatePart(relHdr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAssembleFailed, err)
	}

	var altHdr message.Header
	altHdr.SetContentType("multipart/alternative", nil)
	alt, err := related.CreatePart(altHdr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAssembleFailed, err)
	}

	if err := writeTextPart(alt, "text/plain", doc.PlainBody); err != nil {
		return err
	}
	if err := writeTextPart(alt, "text/html", doc.HTMLBody); err != nil {
		return err
	}
	if err := alt.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrAssembleFailed, err)
	}

	for _, img := range doc.InlineImages {
		a.writeFilePart(related, img.SourcePath, "inline", img.ContentID)
	}

	if err := related.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrAssembleFailed, err)
	}
	return nil
}

func writeTextPart(parent *message.Writer, contentType, body string) error {
	var h message.Header
	h.SetContentType(contentType, map[string]string{"charset": "utf-8"})
	h.Set("Content-Transfer-Encoding", "quoted-printable")

	part, err := parent.CreatePart(h)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAssembleFailed, err)
	}
	if _, err := io.WriteString(part, body); err != nil {
		return fmt.Errorf("%w: %v", ErrAssembleFailed, err)
	}
	if err := part.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrAssembleFailed, err)
	}
	return nil
}

// writeFilePart reads a file and appends it as a leaf with the given
// disposition. Unreadable files are skipped: one missing image or
// attachment must not abort the send.
func (a *Assembler) writeFilePart(parent *message.Writer, path, disposition, contentID string) {
	data, err := os.ReadFile(path)
	if err != nil {
		a.log.Warn("skipping unreadable part", slog.String("path", path), slog.Any("error", err))
		return
	}

	var h message.Header
	h.SetContentType(contentTypeFor(path), nil)
	h.SetContentDisposition(disposition, map[string]string{"filename": baseName(path, disposition)})
	h.Set("Content-Transfer-Encoding", "base64")
	if contentID != "" {
		h.Set("Content-ID", "<"+contentID+">")
	}

	part, err := parent.CreatePart(h)
	if err != nil {
		a.log.Warn("skipping part", slog.String("path", path), slog.Any("error", err))
		return
	}
	if _, err := part.Write(data); err != nil {
		a.log.Warn("failed writing part body", slog.String("path", path), slog.Any("error", err))
	}
	if err := part.Close(); err != nil {
		a.log.Warn("failed closing part", slog.String("path", path), slog.Any("error", err))
	}
}

// contentTypeFor infers a MIME type from the file extension, falling back
// to a generic binary type.
func contentTypeFor(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return "application/octet-stream"
}

func baseName(path, disposition string) string {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		if disposition == "inline" {
			return "image.png"
		}
		return "attachment.bin"
	}
	return name
}
