package crypto

import "github.com/MKhiriev/notepad-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/notepad_cipher_mock.go -package=mock

// NotepadCipher converts notepads to and from their wire form, encrypting
// the body when the notepad is flagged as encrypted.
//
// Title, last modification time and the asset lists always stay readable so
// the server can enforce quotas. Only the sections tree is protected.
type NotepadCipher interface {
	// EncodeBody serializes the sections of notepad. When the notepad is
	// flagged as encrypted the body is replaced by ciphertext derived from
	// passphrase; an empty passphrase then fails with [ErrPassphraseRequired].
	// Unflagged notepads pass through unchanged whatever the passphrase.
	EncodeBody(notepad *models.Notepad, passphrase string) (models.WireNotepad, error)

	// DecodeBody reverses EncodeBody and restores parent references. A wrong
	// passphrase or damaged ciphertext yields a [*DecryptionError] and no
	// notepad.
	DecodeBody(wire models.WireNotepad, passphrase string) (*models.Notepad, error)
}
