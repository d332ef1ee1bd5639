package session

import (
	"context"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultchat/vaultchat/internal/client/client"
	"github.com/vaultchat/vaultchat/internal/common"
	"github.com/vaultchat/vaultchat/internal/keyvault"
	pb "github.com/vaultchat/vaultchat/internal/proto"
)

func newTestSession(t *testing.T, vault *keyvault.Vault, identityID string) (*Session, *rsa.PublicKey) {
	t.Helper()

	key, err := vault.GenerateKeyPair(context.Background())
	require.NoError(t, err)

	s, err := FromLogin(&client.LoginSession{
		Token:      "tok-" + identityID,
		IdentityID: identityID,
		PrivateKey: keyvault.MarshalPrivateKey(key),
	})
	require.NoError(t, err)
	return s, &key.PublicKey
}

func roster(t *testing.T, entries map[string]*rsa.PublicKey) []*pb.Contact {
	t.Helper()
	var list []*pb.Contact
	for id, pub := range entries {
		der, err := keyvault.MarshalPublicKey(pub)
		require.NoError(t, err)
		list = append(list, &pb.Contact{IdentityId: id, DisplayName: id, PublicKey: der, Online: true})
	}
	return list
}

func TestSealDirect_Roundtrip(t *testing.T) {
	vault := keyvault.New(2)
	alice, alicePub := newTestSession(t, vault, "alice")
	bob, bobPub := newTestSession(t, vault, "bob")

	alice.UpdateContacts(roster(t, map[string]*rsa.PublicKey{"bob": bobPub}))
	bob.UpdateContacts(roster(t, map[string]*rsa.PublicKey{"alice": alicePub}))

	env, err := alice.SealDirect("bob", []byte("hello bob"))
	require.NoError(t, err)
	assert.Equal(t, "bob", env.RecipientId)
	assert.NotEqual(t, []byte("hello bob"), env.Ciphertext)

	plaintext, err := bob.Open(env)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello bob"), plaintext)

	// alice cannot open what she sealed for bob
	_, err = alice.Open(env)
	assert.ErrorIs(t, err, common.ErrDecryption)
}

func TestSealDirect_UnknownRecipient(t *testing.T) {
	vault := keyvault.New(1)
	alice, _ := newTestSession(t, vault, "alice")

	_, err := alice.SealDirect("nobody", []byte("x"))
	require.Error(t, err)
}

func TestSealGroup_Roundtrip(t *testing.T) {
	vault := keyvault.New(2)
	alice, _ := newTestSession(t, vault, "alice")
	bob, bobPub := newTestSession(t, vault, "bob")
	carol, carolPub := newTestSession(t, vault, "carol")

	alice.UpdateContacts(roster(t, map[string]*rsa.PublicKey{"bob": bobPub, "carol": carolPub}))

	env, err := alice.SealGroup("g1", []string{"bob", "carol"}, []byte("hi all"))
	require.NoError(t, err)
	assert.Len(t, env.WrappedKeys, 2)

	for _, member := range []*Session{bob, carol} {
		plaintext, err := member.OpenGroup(env)
		require.NoError(t, err)
		assert.Equal(t, []byte("hi all"), plaintext)
	}

	// alice has no wrap of her own
	_, err = alice.OpenGroup(env)
	assert.ErrorIs(t, err, common.ErrDecryption)
}

func TestUpdateContacts_SkipsBadKeys(t *testing.T) {
	vault := keyvault.New(1)
	alice, _ := newTestSession(t, vault, "alice")

	alice.UpdateContacts([]*pb.Contact{
		{IdentityId: "mangled", PublicKey: []byte("not-a-key")},
	})
	_, ok := alice.Contact("mangled")
	assert.False(t, ok)
}

func TestSetPresence(t *testing.T) {
	vault := keyvault.New(1)
	alice, alicePub := newTestSession(t, vault, "alice")
	alice.UpdateContacts(roster(t, map[string]*rsa.PublicKey{"bob": alicePub}))

	alice.SetPresence("bob", false)
	c, ok := alice.Contact("bob")
	require.True(t, ok)
	assert.False(t, c.Online)
}
