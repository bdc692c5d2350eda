package compiler

import "time"

// DefaultFooterColor is the accent color used when an Identity does not
// specify one.
const DefaultFooterColor = "#179299"

// Draft is a user-authored, not-yet-sent email: recipient, subject, a
// markdown body, and paths to files that should travel as attachments.
// It is an immutable input to compilation; the compiler never modifies it.
type Draft struct {
	Recipient   string     `json:"recipient"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body"`
	Attachments []string   `json:"attachments"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

// Identity describes the sender persona rendered into the email footer.
// Emails is display-only and may contain duplicates or be empty.
type Identity struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Department  string   `json:"department"`
	Institution string   `json:"institution"`
	Phone       string   `json:"phone"`
	Emails      []string `json:"emails"`
	FooterColor string   `json:"footer_color"`
}

// InlineImage is a local image discovered in the markdown body. ContentID
// is the freshly minted cid the HTML references; SourcePath is the original
// destination exactly as written in the draft.
type InlineImage struct {
	ContentID  string
	SourcePath string
}

// CompiledDocument is the fully rendered email content, ready for the
// message assembler or the remote scheduler. It is created fresh per
// Compile call and never mutated afterwards.
type CompiledDocument struct {
	HTMLBody     string
	PlainBody    string
	InlineImages []InlineImage
	Attachments  []string
}
