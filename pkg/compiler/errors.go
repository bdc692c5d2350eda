package compiler

import "errors"

var (
	// ErrMarkdownRender indicates the markdown renderer failed.
	ErrMarkdownRender = errors.New("failed to render markdown")

	// ErrBadToken indicates a tracking token is not valid base64url.
	ErrBadToken = errors.New("malformed tracking token")
)
