package compiler

import (
	"fmt"
	"html"
	"strings"
)

// RenderFooter renders the sender identity as an HTML fragment and a
// plain-text fragment. Pure string templating: it never fails, including
// for an all-empty Identity.
func RenderFooter(identity Identity) (htmlFooter, plainFooter string) {
	color := identity.FooterColor
	if color == "" {
		color = DefaultFooterColor
	}

	links := make([]string, len(identity.Emails))
	for i, email := range identity.Emails {
		escaped := html.EscapeString(email)
		links[i] = fmt.Sprintf(`<a href="mailto:%s">%s</a>`, escaped, escaped)
	}

	htmlFooter = fmt.Sprintf(
		`<div style="font-family: sans-serif; border-left: 4px solid %[1]s; padding-left: 12px; color: #333;">`+
			`<h3 style="margin: 0; color: #2c3e50;">%[2]s</h3>`+
			`<p style="margin: 2px 0; font-size: 14px;">%[3]s<br>%[4]s</p>`+
			`<p style="margin: 2px 0; font-size: 12px; color: #666;">%[5]s</p><br>`+
			`<div style="font-size: 13px;"><span style="color: %[1]s;">Phone:</span> %[6]s<br>`+
			`<span style="color: %[1]s;">E-mail:</span> %[7]s</div></div>`,
		color,
		html.EscapeString(identity.Name),
		html.EscapeString(identity.Role),
		html.EscapeString(identity.Department),
		html.EscapeString(identity.Institution),
		html.EscapeString(identity.Phone),
		strings.Join(links, " || "),
	)

	plainFooter = fmt.Sprintf(
		"%s\n%s\n%s\n%s\n\nPhone: %s\nEmail: %s",
		identity.Name,
		identity.Role,
		identity.Department,
		identity.Institution,
		identity.Phone,
		strings.Join(identity.Emails, " | "),
	)

	return htmlFooter, plainFooter
}
