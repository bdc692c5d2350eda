package mailer

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emersion/go-message"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pseudofractal/Shiryoku/pkg/compiler"
)

type part struct {
	mediaType string
	contentID string
	body      string
	children  []part
}

func parsePart(t *testing.T, e *message.Entity) part {
	t.Helper()

	mediaType, _, err := e.Header.ContentType()
	require.NoError(t, err)

	p := part{mediaType: mediaType, contentID: e.Header.Get("Content-Id")}

	if mr := e.MultipartReader(); mr != nil {
		for {
			child, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			p.children = append(p.children, parsePart(t, child))
		}
		return p
	}

	body, err := io.ReadAll(e.Body)
	require.NoError(t, err)
	p.body = string(body)
	return p
}

func assemble(t *testing.T, doc *compiler.CompiledDocument) part {
	t.Helper()

	var buf bytes.Buffer
	err := NewAssembler(nil).Assemble(&buf, doc, AssembleParams{
		SenderName:       "Ada Lovelace",
		SenderAddress:    "ada@example.org",
		RecipientAddress: "dest@example.com",
		Subject:          "Subject line",
	})
	require.NoError(t, err)

	entity, err := message.Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return parsePart(t, entity)
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestAssemble_TreeStructure(t *testing.T) {
	t.Parallel()

	imgPath := writeTempFile(t, "logo.png", []byte{0x89, 'P', 'N', 'G'})
	attPath := writeTempFile(t, "report.pdf", []byte("%PDF-1.4"))

	doc := &compiler.CompiledDocument{
		HTMLBody:     `<html><img src="cid:abc123"></html>`,
		PlainBody:    "plain version",
		InlineImages: []compiler.InlineImage{{ContentID: "abc123", SourcePath: imgPath}},
		Attachments:  []string{attPath},
	}

	root := assemble(t, doc)

	require.Equal(t, "multipart/mixed", root.mediaType)
	require.Len(t, root.children, 2)

	related := root.children[0]
	require.Equal(t, "multipart/related", related.mediaType)
	require.Len(t, related.children, 2)

	alt := related.children[0]
	require.Equal(t, "multipart/alternative", alt.mediaType)
	require.Len(t, alt.children, 2)
	require.Equal(t, "text/plain", alt.children[0].mediaType)
	require.Equal(t, "plain version", strings.TrimSpace(alt.children[0].body))
	require.Equal(t, "text/html", alt.children[1].mediaType)
	require.Contains(t, alt.children[1].body, "cid:abc123")

	img := related.children[1]
	require.Equal(t, "image/png", img.mediaType)
	require.Equal(t, "<abc123>", img.contentID)

	att := root.children[1]
	require.Equal(t, "application/pdf", att.mediaType)
	require.Equal(t, "%PDF-1.4", att.body)
}

func TestAssemble_AlternativeAlwaysHasTwoLeaves(t *testing.T) {
	t.Parallel()

	// No images, no attachments: the alternative shape is unchanged.
	root := assemble(t, &compiler.CompiledDocument{HTMLBody: "<p>h</p>", PlainBody: "p"})

	require.Equal(t, "multipart/mixed", root.mediaType)
	require.Len(t, root.children, 1)
	related := root.children[0]
	require.Len(t, related.children, 1)
	alt := related.children[0]
	require.Equal(t, "multipart/alternative", alt.mediaType)
	require.Len(t, alt.children, 2)
	require.Equal(t, "text/plain", alt.children[0].mediaType)
	require.Equal(t, "text/html", alt.children[1].mediaType)
}

func TestAssemble_MissingFilesAreSkipped(t *testing.T) {
	t.Parallel()

	doc := &compiler.CompiledDocument{
		HTMLBody:     `<img src="cid:gone">`,
		PlainBody:    "p",
		InlineImages: []compiler.InlineImage{{ContentID: "gone", SourcePath: "/definitely/not/here.png"}},
		Attachments:  []string{"/also/not/here.pdf"},
	}

	root := assemble(t, doc)

	require.Len(t, root.children, 1) // related only, attachment skipped
	related := root.children[0]
	require.Len(t, related.children, 1) // alternative only, image skipped
	// Bodies are untouched; the cid reference dangles by design.
	require.Contains(t, related.children[0].children[1].body, "cid:gone")
}

func TestAssemble_UnknownExtensionFallsBack(t *testing.T) {
	t.Parallel()

	blob := writeTempFile(t, "data.xyzunknown", []byte{1, 2, 3})
	doc := &compiler.CompiledDocument{HTMLBody: "h", PlainBody: "p", Attachments: []string{blob}}

	root := assemble(t, doc)
	require.Equal(t, "application/octet-stream", root.children[1].mediaType)
}

func TestAssemble_InvalidAddressIsHardError(t *testing.T) {
	t.Parallel()

	doc := &compiler.CompiledDocument{HTMLBody: "h", PlainBody: "p"}

	var buf bytes.Buffer
	err := NewAssembler(nil).Assemble(&buf, doc, AssembleParams{
		SenderAddress:    "not an address",
		RecipientAddress: "dest@example.com",
	})
	require.ErrorIs(t, err, ErrInvalidAddress)
	require.Zero(t, buf.Len())

	err = NewAssembler(nil).Assemble(&buf, doc, AssembleParams{
		SenderAddress:    "ada@example.org",
		RecipientAddress: "also not one",
	})
	require.ErrorIs(t, err, ErrInvalidAddress)
	require.Zero(t, buf.Len())
}

func TestAssemble_SenderHeader(t *testing.T) {
	t.Parallel()

	doc := &compiler.CompiledDocument{HTMLBody: "h", PlainBody: "p"}

	var withName bytes.Buffer
	require.NoError(t, NewAssembler(nil).Assemble(&withName, doc, AssembleParams{
		SenderName:       "Ada Lovelace",
		SenderAddress:    "ada@example.org",
		RecipientAddress: "dest@example.com",
	}))
	require.Contains(t, withName.String(), "Ada Lovelace")
	require.Contains(t, withName.String(), "ada@example.org")

	var bare bytes.Buffer
	require.NoError(t, NewAssembler(nil).Assemble(&bare, doc, AssembleParams{
		SenderAddress:    "ada@example.org",
		RecipientAddress: "dest@example.com",
	}))
	require.NotContains(t, bare.String(), "Ada Lovelace")
	require.Contains(t, bare.String(), "ada@example.org")
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, from string, recipients []string, raw []byte) error {
	args := m.Called(ctx, from, recipients, raw)
	return args.Error(0)
}

func TestDeliver_HandsAssembledMessageToSender(t *testing.T) {
	t.Parallel()

	doc := &compiler.CompiledDocument{HTMLBody: "h", PlainBody: "p"}
	sender := &mockSender{}
	sender.On("Send", mock.Anything, "ada@example.org", []string{"dest@example.com"},
		mock.MatchedBy(func(raw []byte) bool { return len(raw) > 0 })).Return(nil)

	err := NewAssembler(nil).Deliver(context.Background(), sender, doc, AssembleParams{
		SenderAddress:    "ada@example.org",
		RecipientAddress: "dest@example.com",
		Subject:          "s",
	})
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestDeliver_ValidationFailureNeverReachesTransport(t *testing.T) {
	t.Parallel()

	doc := &compiler.CompiledDocument{HTMLBody: "h", PlainBody: "p"}
	sender := &mockSender{}

	err := NewAssembler(nil).Deliver(context.Background(), sender, doc, AssembleParams{
		SenderAddress:    "broken",
		RecipientAddress: "dest@example.com",
	})
	require.ErrorIs(t, err, ErrInvalidAddress)
	sender.AssertNotCalled(t, "Send")
}
