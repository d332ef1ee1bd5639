// Package keyvault generates identity key material and performs the
// deterministic encryption of private keys under a key derived from the
// user's seed phrase plus two account attributes. The server calls it during
// registration and login; clients call the same derivation locally. No
// plaintext private key is ever persisted anywhere.
package keyvault

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/argon2"

	"github.com/vaultchat/vaultchat/internal/common"
)

// SeedEntropyBits is the entropy drawn for a new seed phrase. 160 bits
// encodes to a 15-word BIP-39 mnemonic.
const SeedEntropyBits = 160

// KeyBits is the RSA modulus size for identity keypairs. 2048-bit OAEP is
// sized for wrapping short symmetric keys, not bulk data.
const KeyBits = 2048

const gcmNonceSize = 12

// Vault produces key material. RSA generation is CPU-bound, so concurrent
// generations are capped by a fixed number of slots to keep registration
// bursts from starving connection handling.
type Vault struct {
	keygenSlots chan struct{}
}

// New returns a Vault allowing at most workers concurrent key generations.
func New(workers int) *Vault {
	if workers < 1 {
		workers = 1
	}
	return &Vault{keygenSlots: make(chan struct{}, workers)}
}

// GenerateSeedPhrase draws fresh entropy and encodes it as a checksummed
// mnemonic over the standard 2048-word list. Returns
// common.ErrEntropyUnavailable if the platform RNG fails.
func (v *Vault) GenerateSeedPhrase() (string, error) {
	entropy, err := bip39.NewEntropy(SeedEntropyBits)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrEntropyUnavailable, err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrEntropyUnavailable, err)
	}
	return mnemonic, nil
}

// GenerateKeyPair produces a fresh RSA identity keypair, waiting for a free
// generation slot first. The wait is cancellable through ctx.
func (v *Vault) GenerateKeyPair(ctx context.Context) (*rsa.PrivateKey, error) {
	select {
	case v.keygenSlots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-v.keygenSlots }()

	key, err := rsa.GenerateKey(rand.Reader, KeyBits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEntropyUnavailable, err)
	}
	return key, nil
}

// NormalizeSeedPhrase lowercases the phrase and collapses all whitespace to
// single spaces, so that formatting differences in user input do not change
// the derived wrap key.
func NormalizeSeedPhrase(seedPhrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(seedPhrase)), " ")
}

// DeriveWrapKey deterministically derives the 256-bit private-key wrap key
// from the seed phrase, phone and org id with argon2id. The same three
// inputs always yield the same key; changing any one of them produces an
// unrelated key. The account attributes enter through the salt, so the
// server cannot tell a wrong seed phrase apart from a wrong phone or org id.
func DeriveWrapKey(seedPhrase, phone, orgID string) []byte {
	salt := sha256.Sum256([]byte(orgID + "\x00" + phone))
	return argon2.IDKey([]byte(NormalizeSeedPhrase(seedPhrase)), salt[:], 1, 64*1024, 4, 32)
}

// EncryptPrivateKey serializes the private key to PKCS#1 DER and encrypts it
// with AES-GCM under wrapKey. The random nonce is prepended to the
// ciphertext.
func EncryptPrivateKey(key *rsa.PrivateKey, wrapKey []byte) ([]byte, error) {
	plaintext := x509.MarshalPKCS1PrivateKey(key)
	defer common.WipeByteArray(plaintext)

	block, err := aes.NewCipher(wrapKey)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce, err := common.MakeRandByteArray(gcmNonceSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEntropyUnavailable, err)
	}

	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// DecryptPrivateKey reverses EncryptPrivateKey. Any failure (truncated
// input, GCM authentication, DER parsing) surfaces as
// common.ErrInvalidCredentials, since a wrong wrap key is indistinguishable
// from corrupted ciphertext and the caller must not learn which input was
// wrong.
func DecryptPrivateKey(ciphertext, wrapKey []byte) (*rsa.PrivateKey, error) {
	if len(ciphertext) < gcmNonceSize {
		return nil, common.ErrInvalidCredentials
	}

	block, err := aes.NewCipher(wrapKey)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	plaintext, err := aesgcm.Open(nil, ciphertext[:gcmNonceSize], ciphertext[gcmNonceSize:], nil)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	defer common.WipeByteArray(plaintext)

	key, err := x509.ParsePKCS1PrivateKey(plaintext)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	return key, nil
}

// MarshalPublicKey encodes the public key as PKIX DER, the fixed encoding
// exchanged end-to-end.
func MarshalPublicKey(pub *rsa.PublicKey) ([]byte, error) {
	return x509.MarshalPKIXPublicKey(pub)
}

// ParsePublicKey decodes a PKIX DER public key produced by MarshalPublicKey.
func ParsePublicKey(der []byte) (*rsa.PublicKey, error) {
	pub, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("parsing public key: %w", err)
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("unexpected public key type %T", pub)
	}
	return rsaPub, nil
}

// MarshalPrivateKey encodes the private key as PKCS#1 DER for transport to
// the client over the TLS channel after login.
func MarshalPrivateKey(key *rsa.PrivateKey) []byte {
	return x509.MarshalPKCS1PrivateKey(key)
}

// ParsePrivateKey decodes a PKCS#1 DER private key.
func ParsePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	return x509.ParsePKCS1PrivateKey(der)
}
