package sigcode_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lowtopo/retriangulate/sigcode"
)

// TestRoundTrip encodes and decodes assorted payloads.
func TestRoundTrip(t *testing.T) {
	payloads := [][]byte{
		{},
		{0x01},
		{0xff, 0x00, 0x7a},
		bytes.Repeat([]byte{7}, 40),
	}
	for _, p := range payloads {
		sig := sigcode.Encode(p)
		back, err := sigcode.Decode(sig)
		require.NoError(t, err)
		require.Equal(t, p, back)
	}
}

// TestMalformed rejects non-base58 input.
func TestMalformed(t *testing.T) {
	_, err := sigcode.Decode("0OIl") // characters excluded from base58
	require.ErrorIs(t, err, sigcode.ErrMalformed)
}

// TestLengthMonotone: longer payloads of a non-zero byte never encode
// shorter, which the search engine's shortest-first priority relies on.
func TestLengthMonotone(t *testing.T) {
	prev := -1
	for n := 0; n < 64; n++ {
		sig := sigcode.Encode(bytes.Repeat([]byte{9}, n))
		require.GreaterOrEqual(t, len(sig), prev, "length dipped at %d bytes", n)
		prev = len(sig)
	}
}
