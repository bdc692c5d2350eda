package compiler

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// markdown is the shared CommonMark processor. Tables and strikethrough
// match the grammar drafts are written in; the processor itself is
// stateless, so sharing it across goroutines is safe.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// CompileBody parses a markdown body and returns its HTML rendering, its
// plain-text rendering, and the local images that must be embedded.
//
// Images with an http or https destination pass through untouched. Every
// other image destination is treated as a local file path: the destination
// is rewritten to cid:<id> with a fresh unique content-id, and an
// InlineImage is recorded in first-seen order. Duplicate paths are not
// deduplicated; each occurrence gets its own content-id.
//
// The plain rendering is an independent pass over the same source, not a
// strip of the HTML, so HTML entity encoding never leaks into it.
func CompileBody(source string) (html string, plain string, images []InlineImage, err error) {
	src := []byte(source)

	doc := markdown.Parser().Parse(text.NewReader(src))
	images = rewriteLocalImages(doc)

	var buf bytes.Buffer
	if err := markdown.Renderer().Render(&buf, src, doc); err != nil {
		return "", "", nil, fmt.Errorf("%w: %v", ErrMarkdownRender, err)
	}

	return buf.String(), plainText(src), images, nil
}

// rewriteLocalImages walks the parsed document, replaces every local image
// destination with a cid: reference, and returns the discovered images in
// document order.
func rewriteLocalImages(doc ast.Node) []InlineImage {
	var images []InlineImage

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		img, ok := n.(*ast.Image)
		if !ok {
			return ast.WalkContinue, nil
		}

		dest := string(img.Destination)
		if strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://") {
			return ast.WalkContinue, nil
		}

		cid := uuid.NewString()
		img.Destination = []byte("cid:" + cid)
		images = append(images, InlineImage{ContentID: cid, SourcePath: dest})
		return ast.WalkContinue, nil
	})

	return images
}

// plainText renders the markdown source as plain text: literal text and
// code runs only, a newline per soft or hard line break, a blank line after
// each paragraph, and a newline after each list item.
func plainText(src []byte) string {
	doc := markdown.Parser().Parse(text.NewReader(src))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(src))
				if node.HardLineBreak() || node.SoftLineBreak() {
					b.WriteByte('\n')
				}
			}
		case *ast.Paragraph:
			if !entering {
				b.WriteString("\n\n")
			}
		case *ast.ListItem:
			if !entering {
				b.WriteByte('\n')
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					b.Write(seg.Value(src))
				}
			}
		}
		return ast.WalkContinue, nil
	})

	return b.String()
}
