package compiler

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestToken_Deterministic(t *testing.T) {
	t.Parallel()

	require.Equal(t, Token("a@b.com"), Token("a@b.com"))
	require.NotEqual(t, Token("a@b.com"), Token("b@a.com"))
}

func TestToken_RoundTrip(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("decode inverts encode for any address", prop.ForAll(
		func(addr string) bool {
			decoded, err := DecodeToken(Token(addr))
			return err == nil && decoded == addr
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestDecodeToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := DecodeToken("not!!valid@@base64")
	require.ErrorIs(t, err, ErrBadToken)
}

func TestBeacon(t *testing.T) {
	t.Parallel()

	token := Token("user@example.com")
	markup := Beacon("https://worker.example.com", token)

	require.Contains(t, markup, "https://worker.example.com/pixel.png?id="+token)
	require.Contains(t, markup, `width="1"`)
	require.Contains(t, markup, `height="1"`)
	require.Contains(t, markup, "display:none")
}
