package compiler

import (
	"encoding/base64"
	"fmt"
)

// Token derives the opaque tracking token for a recipient address.
// The encoding is deliberately reversible (base64url, no padding), not a
// hash: the dashboard decodes tokens back to addresses for display, and the
// same address must always map to the same token so opens group correctly.
func Token(recipientEmail string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(recipientEmail))
}

// DecodeToken reverses Token, recovering the recipient address.
func DecodeToken(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadToken, err)
	}
	return string(raw), nil
}

// Beacon renders the invisible 1x1 tracking pixel reference for a token.
func Beacon(baseURL, token string) string {
	return fmt.Sprintf(
		`<img src="%s/pixel.png?id=%s" alt="" width="1" height="1" border="0" style="display:none;" />`,
		baseURL, token,
	)
}
