// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// ErrSealedTokenCorrupted is returned by Open when the stored blob is too
// short or fails authentication.
var ErrSealedTokenCorrupted = errors.New("sealed token corrupted")

// NewTokenSealer returns a sealer keyed by secret. An empty secret yields a
// pass-through sealer that stores the token unchanged.
func NewTokenSealer(secret string) TokenSealer {
	if secret == "" {
		return plainSealer{}
	}
	return &argonSealer{
		secret:       []byte(secret),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
		deriveKey:    argon2.IDKey,
	}
}

type plainSealer struct{}

func (plainSealer) Seal(token string) (string, error) { return token, nil }
func (plainSealer) Open(sealed string) (string, error) { return sealed, nil }

// argonSealer derives an AES-256 key from the secret and a random per-value
// salt with Argon2id and seals the token with AES-GCM.
//
// Stored layout (standard base64): salt (16 bytes) ‖ nonce (12 bytes) ‖ ciphertext.
//
// The AEAD derived for the most recent salt is kept, so reading the same
// stored token again costs only AES-GCM work.
type argonSealer struct {
	secret []byte

	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	deriveKey    func(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) []byte

	mu         sync.Mutex
	cachedSalt []byte
	cachedAEAD cipher.AEAD
}

func (s *argonSealer) Seal(token string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.aead(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(token)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(token), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

func (s *argonSealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrSealedTokenCorrupted, err)
	}
	if len(blob) < saltSize {
		return "", ErrSealedTokenCorrupted
	}

	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := s.aead(salt)
	if err != nil {
		return "", err
	}

	if len(rest) < gcm.NonceSize() {
		return "", ErrSealedTokenCorrupted
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSealedTokenCorrupted, err)
	}

	return string(plain), nil
}

func (s *argonSealer) aead(salt []byte) (cipher.AEAD, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cachedAEAD != nil && bytes.Equal(s.cachedSalt, salt) {
		return s.cachedAEAD, nil
	}

	key := s.deriveKey(s.secret, salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	s.cachedSalt = bytes.Clone(salt)
	s.cachedAEAD = gcm
	return gcm, nil
}
