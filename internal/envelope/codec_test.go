package envelope

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"

	"github.com/vaultchat/vaultchat/internal/common"
)

func genKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	return key
}

func TestEncryptDirect_Roundtrip(t *testing.T) {
	recipient := genKey(t)
	plaintext := []byte("meet at the usual place")

	sealed, err := EncryptDirect(plaintext, &recipient.PublicKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Contains(sealed.Ciphertext, plaintext) {
		t.Fatal("plaintext leaked into ciphertext")
	}

	got, err := Decrypt(sealed.Ciphertext, sealed.WrappedKey, sealed.IV, recipient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("expected %q, got %q", plaintext, got)
	}
}

func TestDecrypt_WrongRecipient(t *testing.T) {
	recipient := genKey(t)
	eavesdropper := genKey(t)

	sealed, err := EncryptDirect([]byte("secret"), &recipient.PublicKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = Decrypt(sealed.Ciphertext, sealed.WrappedKey, sealed.IV, eavesdropper)
	if !errors.Is(err, common.ErrDecryption) {
		t.Fatalf("expected ErrDecryption, got %v", err)
	}
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	recipient := genKey(t)

	sealed, err := EncryptDirect([]byte("secret"), &recipient.PublicKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sealed.Ciphertext[0] ^= 0xff
	_, err = Decrypt(sealed.Ciphertext, sealed.WrappedKey, sealed.IV, recipient)
	if !errors.Is(err, common.ErrDecryption) {
		t.Fatalf("expected ErrDecryption, got %v", err)
	}
}

func TestEncryptForGroup(t *testing.T) {
	alice := genKey(t)
	bob := genKey(t)
	carol := genKey(t)

	members := map[string]*rsa.PublicKey{
		"alice": &alice.PublicKey,
		"bob":   &bob.PublicKey,
		"carol": &carol.PublicKey,
	}
	plaintext := []byte("standup moved to 10:30")

	sealed, err := EncryptForGroup(plaintext, members, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := sealed.WrappedKeysByMember["alice"]; ok {
		t.Fatal("sender must not receive a key wrap")
	}
	if len(sealed.WrappedKeysByMember) != 2 {
		t.Fatalf("expected 2 wraps, got %d", len(sealed.WrappedKeysByMember))
	}

	for name, key := range map[string]*rsa.PrivateKey{"bob": bob, "carol": carol} {
		got, err := Decrypt(sealed.Ciphertext, sealed.WrappedKeysByMember[name], sealed.IV, key)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Fatalf("%s: expected %q, got %q", name, plaintext, got)
		}
	}
}
