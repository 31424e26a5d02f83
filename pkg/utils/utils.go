// Package utils holds password hashing, e-mail checks and symmetric
// encryption helpers.
package utils

import (
	"crypto/rand"
	"errors"
	"net/mail"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/chacha20poly1305"
)

// HashCost is the bcrypt cost used by HashPassword.
var HashCost = 14

// HashPassword hashes a plain password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", apperrors.Hashing(err)
	}
	return string(bytes), nil
}

// CheckPasswordHash compares a plain password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsEmail returns true if the string is a bare e-mail address.
func IsEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// KeySize is the length of keys accepted by Encrypt and Decrypt.
const KeySize = chacha20poly1305.KeySize

var errShortCiphertext = errors.New("ciphertext too short")

// NewKey returns a random encryption key.
func NewKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, apperrors.Encryption(err)
	}
	return key, nil
}

// Encrypt seals plaintext with XChaCha20-Poly1305. The random nonce is
// prepended to the returned ciphertext.
func Encrypt(key, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, apperrors.Encryption(err)
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, apperrors.Encryption(err)
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a ciphertext produced by Encrypt.
func Decrypt(key, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, apperrors.Encryption(err)
	}
	if len(ciphertext) < aead.NonceSize()+aead.Overhead() {
		return nil, apperrors.Encryption(errShortCiphertext)
	}
	nonce, sealed := ciphertext[:aead.NonceSize()], ciphertext[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, apperrors.Encryption(err)
	}
	return plaintext, nil
}
