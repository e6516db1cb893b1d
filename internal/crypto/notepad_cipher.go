// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/MKhiriev/notepad-sync/models"
)

// Scheme is the value of [models.Notepad.Crypto] for notepads encrypted by
// this package.
const Scheme = "XChaCha20-Poly1305"

const saltSize = 16

var errCiphertextTooShort = errors.New("ciphertext is too short")

// notepadCipher is the private implementation of [NotepadCipher].
type notepadCipher struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewNotepadCipher constructs a [NotepadCipher] deriving keys with Argon2id
// (1 iteration, 64 MiB, 4 threads, 32-byte key) and sealing bodies with
// XChaCha20-Poly1305.
func NewNotepadCipher() NotepadCipher {
	return &notepadCipher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  chacha20poly1305.KeySize,
	}
}

func (c *notepadCipher) EncodeBody(notepad *models.Notepad, passphrase string) (models.WireNotepad, error) {
	sections := notepad.Sections
	if sections == nil {
		sections = []*models.Section{}
	}

	plain, err := json.Marshal(sections)
	if err != nil {
		return models.WireNotepad{}, fmt.Errorf("encode sections: %w", err)
	}

	if !notepad.IsEncrypted() {
		return notepad.ToWire(plain), nil
	}
	if passphrase == "" {
		return models.WireNotepad{}, ErrPassphraseRequired
	}

	sealed, err := c.encrypt(plain, passphrase)
	if err != nil {
		return models.WireNotepad{}, fmt.Errorf("encrypt sections: %w", err)
	}

	body, err := json.Marshal(sealed)
	if err != nil {
		return models.WireNotepad{}, fmt.Errorf("encode ciphertext: %w", err)
	}

	return notepad.ToWire(body), nil
}

func (c *notepadCipher) DecodeBody(wire models.WireNotepad, passphrase string) (*models.Notepad, error) {
	notepad, err := wire.Header()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedNotepad, err)
	}

	plain := []byte(wire.Sections)
	if wire.Crypto != "" {
		if passphrase == "" {
			return nil, ErrPassphraseRequired
		}

		var sealed string
		if err = json.Unmarshal(wire.Sections, &sealed); err != nil {
			return nil, &DecryptionError{Err: fmt.Errorf("body is not a ciphertext: %w", err)}
		}

		if plain, err = c.decrypt(sealed, passphrase); err != nil {
			return nil, &DecryptionError{Err: err}
		}
	}

	if len(plain) > 0 {
		if err = json.Unmarshal(plain, &notepad.Sections); err != nil {
			if wire.Crypto != "" {
				return nil, &DecryptionError{Err: fmt.Errorf("decrypted body is not a sections tree: %w", err)}
			}
			return nil, fmt.Errorf("%w: %w", ErrMalformedNotepad, err)
		}
	}
	notepad.RestoreParents()

	return notepad, nil
}

// encrypt returns base64(salt ‖ nonce ‖ ciphertext). A fresh salt and nonce
// are drawn for every call.
func (c *notepadCipher) encrypt(plain []byte, passphrase string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	aead, err := chacha20poly1305.NewX(c.deriveKey(passphrase, salt))
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize(), saltSize+aead.NonceSize()+len(plain)+aead.Overhead())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	blob := append(salt, aead.Seal(nonce, nonce, plain, nil)...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (c *notepadCipher) decrypt(sealed, passphrase string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", err)
	}
	if len(blob) < saltSize+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, errCiphertextTooShort
	}

	salt := blob[:saltSize]
	nonce := blob[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	ciphertext := blob[saltSize+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(c.deriveKey(passphrase, salt))
	if err != nil {
		return nil, err
	}

	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open ciphertext: %w", err)
	}
	return plain, nil
}

func (c *notepadCipher) deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)
}
