// Package envelope implements the hybrid encryption used for every message:
// a fresh 256-bit symmetric key encrypts the plaintext once with AES-GCM,
// and that key is wrapped with RSA-OAEP for each recipient. The package is
// pure and stateless; both the relay's clients and the server-side tests
// call it, and the relay itself never does: it routes ciphertext blind.
package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"

	"github.com/vaultchat/vaultchat/internal/common"
)

const (
	keySize   = 32
	nonceSize = 12
)

// Sealed is the output of encrypting a message for a single recipient.
// Ciphertext carries the GCM tag; IV is the random nonce.
type Sealed struct {
	Ciphertext []byte
	WrappedKey []byte
	IV         []byte
}

// GroupSealed is the output of encrypting a message for a group. The
// ciphertext is identical for all recipients; only the key wraps differ.
type GroupSealed struct {
	Ciphertext          []byte
	WrappedKeysByMember map[string][]byte
	IV                  []byte
}

// EncryptDirect encrypts plaintext for one recipient. A fresh symmetric key
// and IV are drawn per call and the key is never reused across messages.
func EncryptDirect(plaintext []byte, recipientPublicKey *rsa.PublicKey) (*Sealed, error) {
	key, iv, ciphertext, err := seal(plaintext)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	wrapped, err := wrapKey(key, recipientPublicKey)
	if err != nil {
		return nil, err
	}

	return &Sealed{Ciphertext: ciphertext, WrappedKey: wrapped, IV: iv}, nil
}

// EncryptForGroup encrypts plaintext once and wraps the symmetric key for
// every member except the sender. Cost is O(members) asymmetric operations
// but a single symmetric pass, so ciphertext size is independent of group
// size.
func EncryptForGroup(plaintext []byte, memberPublicKeys map[string]*rsa.PublicKey, senderID string) (*GroupSealed, error) {
	key, iv, ciphertext, err := seal(plaintext)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	wrappedByMember := make(map[string][]byte, len(memberPublicKeys))
	for memberID, pub := range memberPublicKeys {
		if memberID == senderID {
			continue
		}
		wrapped, err := wrapKey(key, pub)
		if err != nil {
			return nil, fmt.Errorf("wrapping key for member %s: %w", memberID, err)
		}
		wrappedByMember[memberID] = wrapped
	}

	return &GroupSealed{Ciphertext: ciphertext, WrappedKeysByMember: wrappedByMember, IV: iv}, nil
}

// Decrypt unwraps the symmetric key with the caller's private key and opens
// the ciphertext. Every failure mode (a wrap meant for a different key, a
// tampered ciphertext, a wrong IV) surfaces as common.ErrDecryption.
func Decrypt(ciphertext, wrappedKeyForSelf, iv []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	key, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, privateKey, wrappedKeyForSelf, nil)
	if err != nil {
		return nil, common.ErrDecryption
	}
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, common.ErrDecryption
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, common.ErrDecryption
	}

	plaintext, err := aesgcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, common.ErrDecryption
	}
	return plaintext, nil
}

func seal(plaintext []byte) (key, iv, ciphertext []byte, err error) {
	key, err = common.MakeRandByteArray(keySize)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", common.ErrEntropyUnavailable, err)
	}
	iv, err = common.MakeRandByteArray(nonceSize)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", common.ErrEntropyUnavailable, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, nil, err
	}

	return key, iv, aesgcm.Seal(nil, iv, plaintext, nil), nil
}

func wrapKey(key []byte, pub *rsa.PublicKey) ([]byte, error) {
	return rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, key, nil)
}
