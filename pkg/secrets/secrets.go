package secrets

import (
	"crypto/rand"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

var ErrDecrypt = errors.New("failed to decrypt secret")

// Cipher is the encrypt/decrypt contract for the stored banking credential.
// Decrypt must fail on tampering or a key mismatch, never return garbage.
type Cipher interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

const keySize = 32

type SecretBox struct {
	key [keySize]byte
}

func NewSecretBox(key []byte) (*SecretBox, error) {
	if len(key) != keySize {
		return nil, errors.Newf("expected %d byte key, got %d", keySize, len(key))
	}

	s := &SecretBox{}
	copy(s.key[:], key)

	return s, nil
}

func (s *SecretBox) Encrypt(plaintext []byte) ([]byte, error) {
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, errors.WithStack(err)
	}

	return secretbox.Seal(nonce[:], plaintext, &nonce, &s.key), nil
}

func (s *SecretBox) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < 24 {
		return nil, ErrDecrypt
	}

	var nonce [24]byte
	copy(nonce[:], ciphertext[:24])

	plaintext, ok := secretbox.Open(nil, ciphertext[24:], &nonce, &s.key)
	if !ok {
		return nil, ErrDecrypt
	}

	return plaintext, nil
}
