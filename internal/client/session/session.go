// Package session holds the client's logged-in state: identity, session
// token, the recovered private key and the org contact roster. All message
// crypto goes through here so the rest of the client never touches raw keys.
package session

import (
	"crypto/rsa"
	"fmt"
	"sync"

	"github.com/vaultchat/vaultchat/internal/client/client"
	"github.com/vaultchat/vaultchat/internal/common"
	"github.com/vaultchat/vaultchat/internal/envelope"
	"github.com/vaultchat/vaultchat/internal/keyvault"
	pb "github.com/vaultchat/vaultchat/internal/proto"
)

// Contact is a roster entry with a parsed public key.
type Contact struct {
	ID          string
	DisplayName string
	PublicKey   *rsa.PublicKey
	Online      bool
}

type Session struct {
	IdentityID  string
	DisplayName string
	Role        string
	Token       string

	privateKey *rsa.PrivateKey

	mu       sync.RWMutex
	contacts map[string]*Contact
}

// FromLogin builds a session from a completed login, parsing the recovered
// private key.
func FromLogin(ls *client.LoginSession) (*Session, error) {
	key, err := keyvault.ParsePrivateKey(ls.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}
	return &Session{
		IdentityID:  ls.IdentityID,
		DisplayName: ls.DisplayName,
		Role:        ls.Role,
		Token:       ls.Token,
		privateKey:  key,
		contacts:    make(map[string]*Contact),
	}, nil
}

// UpdateContacts replaces the roster with a fresh contact list frame.
// Entries with unparsable public keys are skipped.
func (s *Session) UpdateContacts(list []*pb.Contact) {
	contacts := make(map[string]*Contact, len(list))
	for _, c := range list {
		pub, err := keyvault.ParsePublicKey(c.GetPublicKey())
		if err != nil {
			continue
		}
		contacts[c.GetIdentityId()] = &Contact{
			ID:          c.GetIdentityId(),
			DisplayName: c.GetDisplayName(),
			PublicKey:   pub,
			Online:      c.GetOnline(),
		}
	}
	s.mu.Lock()
	s.contacts = contacts
	s.mu.Unlock()
}

// SetPresence updates a contact's online flag from a presence frame.
func (s *Session) SetPresence(identityID string, online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.contacts[identityID]; ok {
		c.Online = online
	}
}

// Contact looks up a roster entry.
func (s *Session) Contact(id string) (*Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contacts[id]
	return c, ok
}

// Contacts snapshots the roster.
func (s *Session) Contacts() []*Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		result = append(result, c)
	}
	return result
}

// SealDirect encrypts plaintext for one contact and builds the envelope.
// The relay fills in message id, sender and timestamp.
func (s *Session) SealDirect(recipientID string, plaintext []byte) (*pb.Envelope, error) {
	contact, ok := s.Contact(recipientID)
	if !ok {
		return nil, fmt.Errorf("unknown recipient %s", recipientID)
	}

	sealed, err := envelope.EncryptDirect(plaintext, contact.PublicKey)
	if err != nil {
		return nil, err
	}

	return &pb.Envelope{
		RecipientId: recipientID,
		Ciphertext:  sealed.Ciphertext,
		WrappedKey:  sealed.WrappedKey,
		Iv:          sealed.IV,
	}, nil
}

// SealGroup encrypts plaintext once for a set of contacts and wraps the key
// per member.
func (s *Session) SealGroup(groupID string, memberIDs []string, plaintext []byte) (*pb.GroupEnvelope, error) {
	members := make(map[string]*rsa.PublicKey, len(memberIDs))
	for _, id := range memberIDs {
		contact, ok := s.Contact(id)
		if !ok {
			return nil, fmt.Errorf("unknown group member %s", id)
		}
		members[id] = contact.PublicKey
	}

	sealed, err := envelope.EncryptForGroup(plaintext, members, s.IdentityID)
	if err != nil {
		return nil, err
	}

	return &pb.GroupEnvelope{
		GroupId:     groupID,
		Ciphertext:  sealed.Ciphertext,
		WrappedKeys: sealed.WrappedKeysByMember,
		Iv:          sealed.IV,
	}, nil
}

// Open decrypts a direct envelope addressed to this session.
func (s *Session) Open(env *pb.Envelope) ([]byte, error) {
	return envelope.Decrypt(env.GetCiphertext(), env.GetWrappedKey(), env.GetIv(), s.privateKey)
}

// OpenGroup decrypts a group envelope using this member's key wrap.
func (s *Session) OpenGroup(env *pb.GroupEnvelope) ([]byte, error) {
	wrapped, ok := env.GetWrappedKeys()[s.IdentityID]
	if !ok {
		return nil, common.ErrDecryption
	}
	return envelope.Decrypt(env.GetCiphertext(), wrapped, env.GetIv(), s.privateKey)
}
