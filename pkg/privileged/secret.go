// SPDX-License-Identifier: GPL-3.0-or-later

package privileged

import "github.com/rs/zerolog"

const redacted = "[REDACTED]"

// Secret is the elevation password. It only ever leaves the process through
// a child's stdin; every formatting path prints a redacted placeholder.
type Secret string

// String implements fmt.Stringer
func (s Secret) String() string {
	return redacted
}

// GoString implements fmt.GoStringer so %#v is redacted as well
func (s Secret) GoString() string {
	return redacted
}

// MarshalText keeps the secret out of json and text encoders
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// MarshalZerologObject keeps the secret out of structured log events
func (s Secret) MarshalZerologObject(e *zerolog.Event) {
	e.Str("secret", redacted)
}

// IsEmpty reports whether no secret was provided
func (s Secret) IsEmpty() bool {
	return len(s) == 0
}

func (s Secret) reveal() string {
	return string(s)
}
