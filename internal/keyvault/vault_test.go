package keyvault

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tyler-smith/go-bip39"

	"github.com/vaultchat/vaultchat/internal/common"
)

func TestGenerateSeedPhrase(t *testing.T) {
	v := New(1)

	phrase, err := v.GenerateSeedPhrase()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if words := strings.Fields(phrase); len(words) != 15 {
		t.Fatalf("expected 15 words, got %d", len(words))
	}
	if !bip39.IsMnemonicValid(phrase) {
		t.Fatalf("mnemonic failed checksum: %q", phrase)
	}
}

func TestGenerateKeyPair_ContextCancelled(t *testing.T) {
	v := New(1)
	v.keygenSlots <- struct{}{} // occupy the only slot

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := v.GenerateKeyPair(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNormalizeSeedPhrase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already normal", "alpha beta gamma", "alpha beta gamma"},
		{"mixed case", "Alpha BETA gamma", "alpha beta gamma"},
		{"extra whitespace", "  alpha\tbeta \n gamma ", "alpha beta gamma"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSeedPhrase(tt.in); got != tt.want {
				t.Fatalf("NormalizeSeedPhrase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDeriveWrapKey_Deterministic(t *testing.T) {
	key1 := DeriveWrapKey("alpha beta gamma", "+15550001", "org1")
	key2 := DeriveWrapKey("  Alpha  BETA gamma ", "+15550001", "org1")

	if len(key1) != 32 {
		t.Fatalf("expected 32-byte key, got %d", len(key1))
	}
	// formatting of the phrase must not change the key
	if !bytes.Equal(key1, key2) {
		t.Fatal("expected same key for same normalized inputs")
	}
}

func TestDeriveWrapKey_DifferentInputs(t *testing.T) {
	base := DeriveWrapKey("alpha beta gamma", "+15550001", "org1")

	variants := []struct {
		name string
		key  []byte
	}{
		{"different phrase", DeriveWrapKey("alpha beta delta", "+15550001", "org1")},
		{"different phone", DeriveWrapKey("alpha beta gamma", "+15550002", "org1")},
		{"different org", DeriveWrapKey("alpha beta gamma", "+15550001", "org2")},
	}

	for _, tt := range variants {
		t.Run(tt.name, func(t *testing.T) {
			if bytes.Equal(base, tt.key) {
				t.Fatal("expected different keys for different inputs")
			}
		})
	}
}

func TestPrivateKeyEncryption_Roundtrip(t *testing.T) {
	v := New(1)
	key, err := v.GenerateKeyPair(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wrapKey := DeriveWrapKey("alpha beta gamma", "+15550001", "org1")

	encrypted, err := EncryptPrivateKey(key, wrapKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := DecryptPrivateKey(encrypted, wrapKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(key) {
		t.Fatal("decrypted key does not match original")
	}
}

func TestDecryptPrivateKey_WrongWrapKey(t *testing.T) {
	v := New(1)
	key, err := v.GenerateKeyPair(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	encrypted, err := EncryptPrivateKey(key, DeriveWrapKey("alpha beta gamma", "+15550001", "org1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = DecryptPrivateKey(encrypted, DeriveWrapKey("wrong phrase", "+15550001", "org1"))
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestDecryptPrivateKey_TruncatedInput(t *testing.T) {
	wrapKey := DeriveWrapKey("alpha beta gamma", "+15550001", "org1")

	_, err := DecryptPrivateKey([]byte{1, 2, 3}, wrapKey)
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestPublicKeyEncoding_Roundtrip(t *testing.T) {
	v := New(1)
	key, err := v.GenerateKeyPair(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	der, err := MarshalPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pub, err := ParsePublicKey(der)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pub.Equal(&key.PublicKey) {
		t.Fatal("parsed public key does not match original")
	}
}
