package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrPassphraseRequired is returned when an encrypted notepad is encoded
	// or decoded without a passphrase.
	ErrPassphraseRequired = errors.New("notepad is encrypted but no passphrase is configured")

	// ErrMalformedNotepad is returned for wire notepads whose clear-text part
	// cannot be read.
	ErrMalformedNotepad = errors.New("malformed notepad")
)

// DecryptionError reports that an encrypted body could not be opened, either
// because the passphrase is wrong or because the ciphertext is damaged.
type DecryptionError struct {
	Err error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("failed to decrypt notepad: %v", e.Err)
}

func (e *DecryptionError) Unwrap() error {
	return e.Err
}
