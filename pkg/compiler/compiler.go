package compiler

import "fmt"

// Compile turns a draft and a sender identity into a CompiledDocument:
// HTML body (wrapper, content, footer, tracking beacon), plain body
// (content, separator, footer -- tracking is HTML-only), the inline images
// discovered in the body, and the draft's attachments copied verbatim.
//
// It is a pure function of its inputs and never touches disk or network;
// reading image and attachment bytes is the assembler's job.
func Compile(draft Draft, identity Identity, trackingBaseURL string) (*CompiledDocument, error) {
	htmlContent, plainContent, images, err := CompileBody(draft.Body)
	if err != nil {
		return nil, err
	}

	htmlFooter, plainFooter := RenderFooter(identity)
	beacon := Beacon(trackingBaseURL, Token(draft.Recipient))

	color := identity.FooterColor
	if color == "" {
		color = DefaultFooterColor
	}

	fullHTML := fmt.Sprintf(
		`<!DOCTYPE html><html><head><style>`+
			`body { font-family: Arial, sans-serif; color: #333; line-height: 1.6; } `+
			`a { color: %s; text-decoration: none; } `+
			`img { max-width: 100%%; }`+
			`</style></head><body>`+
			`<div style="margin-bottom: 20px;">%s</div><br>%s%s</body></html>`,
		color, htmlContent, htmlFooter, beacon,
	)

	fullPlain := fmt.Sprintf("%s\n\n--\n%s", plainContent, plainFooter)

	attachments := make([]string, len(draft.Attachments))
	copy(attachments, draft.Attachments)

	return &CompiledDocument{
		HTMLBody:     fullHTML,
		PlainBody:    fullPlain,
		InlineImages: images,
		Attachments:  attachments,
	}, nil
}
