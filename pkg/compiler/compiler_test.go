package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompile_AssemblesDocument(t *testing.T) {
	t.Parallel()

	draft := Draft{
		Recipient:   "dest@example.com",
		Subject:     "Hello",
		Body:        "Some **bold** text with ![img](local.png)",
		Attachments: []string{"/tmp/report.pdf", "/tmp/data.csv"},
	}
	identity := Identity{Name: "Ada", Emails: []string{"ada@example.org"}}

	doc, err := Compile(draft, identity, "https://worker.example.com")
	require.NoError(t, err)

	require.Contains(t, doc.HTMLBody, "<!DOCTYPE html>")
	require.Contains(t, doc.HTMLBody, "<strong>bold</strong>")
	require.Contains(t, doc.HTMLBody, "pixel.png?id="+Token("dest@example.com"))
	require.Contains(t, doc.HTMLBody, "Ada")

	require.Contains(t, doc.PlainBody, "Some bold text")
	require.Contains(t, doc.PlainBody, "\n\n--\n")
	require.NotContains(t, doc.PlainBody, "pixel.png")

	require.Len(t, doc.InlineImages, 1)
	require.Equal(t, 1, strings.Count(doc.HTMLBody, "cid:"+doc.InlineImages[0].ContentID))

	require.Equal(t, draft.Attachments, doc.Attachments)
}

func TestCompile_AttachmentsAreCopied(t *testing.T) {
	t.Parallel()

	draft := Draft{Recipient: "x@y.z", Attachments: []string{"a.txt"}}
	doc, err := Compile(draft, Identity{}, "https://w.example.com")
	require.NoError(t, err)

	doc.Attachments[0] = "mutated"
	require.Equal(t, "a.txt", draft.Attachments[0])
}

func TestCompile_DefaultAccentColor(t *testing.T) {
	t.Parallel()

	doc, err := Compile(Draft{Recipient: "x@y.z"}, Identity{}, "https://w.example.com")
	require.NoError(t, err)
	require.Contains(t, doc.HTMLBody, "a { color: "+DefaultFooterColor)
}
