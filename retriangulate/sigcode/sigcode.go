// Package sigcode encodes raw signature bytes into the printable
// canonical-signature strings the retriangulation engine keys on.
//
// Collaborator models serialize their combinatorial data (gluing
// tables, crossing lists) into bytes and pass them through Encode; the
// base58 alphabet keeps signatures short, unambiguous (no 0/O or 1/l),
// and safe to embed in logs and file names. For payloads without
// leading zero bytes, encoding is length monotone: more bytes never
// yield a shorter signature, which is what the engine's shortest-first
// priority relies on.
package sigcode

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// ErrMalformed is returned when a signature is not valid base58.
var ErrMalformed = errors.New("sigcode: malformed signature")

// Encode renders raw signature bytes as a printable signature string.
func Encode(raw []byte) string {
	return base58.Encode(raw)
}

// Decode recovers the raw signature bytes behind a signature string.
func Decode(sig string) ([]byte, error) {
	if sig == "" {
		// Encode maps the empty payload to "", which base58.Decode rejects.
		return []byte{}, nil
	}
	raw, err := base58.Decode(sig)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return raw, nil
}
