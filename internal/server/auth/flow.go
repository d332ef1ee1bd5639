// Package auth implements the two-step challenge flow for registration and
// login, and session issuance on top of it. Possession of the phone number is
// proven with a one-time code; possession of the seed phrase is proven by
// successfully decrypting the stored private key.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"

	"github.com/vaultchat/vaultchat/internal/common"
	"github.com/vaultchat/vaultchat/internal/keyvault"
	"github.com/vaultchat/vaultchat/internal/logging"
	"github.com/vaultchat/vaultchat/internal/server/identities"
	"github.com/vaultchat/vaultchat/internal/server/stores"
)

const codeDigits = 6

const defaultRole = "member"

// LoginResult is everything CompleteLogin hands back to the client: the
// session plus the recovered key material. The private key only ever crosses
// the wire inside the TLS channel and is never persisted in plaintext.
type LoginResult struct {
	SessionToken string
	Identity     *identities.Identity
	PublicKey    []byte
	PrivateKey   []byte
}

// RegistrationResult is returned once per account. The seed phrase cannot be
// recovered afterwards.
type RegistrationResult struct {
	Identity   *identities.Identity
	PublicKey  []byte
	SeedPhrase string
}

type Flow struct {
	identities identities.Repository
	challenges stores.ChallengeStore
	sessions   stores.SessionStore
	vault      *keyvault.Vault
	sender     CodeSender
	logger     logging.Logger
}

func NewFlow(repo identities.Repository, challenges stores.ChallengeStore, sessions stores.SessionStore,
	vault *keyvault.Vault, sender CodeSender, logger logging.Logger) *Flow {
	return &Flow{
		identities: repo,
		challenges: challenges,
		sessions:   sessions,
		vault:      vault,
		sender:     sender,
		logger:     logger.With("component", "auth"),
	}
}

// BeginRegistration issues a verification code for a new account. Org id and
// phone number are each claimed exclusively, so an existing identity holding
// either one blocks the registration.
func (f *Flow) BeginRegistration(ctx context.Context, orgID, phone string) error {
	_, err := f.identities.GetByOrgOrPhone(ctx, orgID, phone)
	if err == nil {
		return common.ErrConflict
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	return f.issueChallenge(ctx, orgID, phone)
}

// CompleteRegistration consumes the verification code, provisions the
// account's key material and persists the identity. The returned seed phrase
// is shown to the user exactly once.
func (f *Flow) CompleteRegistration(ctx context.Context, orgID, phone, code, displayName, role string) (*RegistrationResult, error) {
	if err := f.consumeChallenge(ctx, orgID, phone, code); err != nil {
		return nil, err
	}

	seedPhrase, err := f.vault.GenerateSeedPhrase()
	if err != nil {
		return nil, err
	}

	key, err := f.vault.GenerateKeyPair(ctx)
	if err != nil {
		return nil, err
	}

	wrapKey := keyvault.DeriveWrapKey(seedPhrase, phone, orgID)
	defer common.WipeByteArray(wrapKey)

	encrypted, err := keyvault.EncryptPrivateKey(key, wrapKey)
	if err != nil {
		return nil, err
	}

	publicKey, err := keyvault.MarshalPublicKey(&key.PublicKey)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = defaultRole
	}

	identity, err := f.identities.Create(ctx, &identities.Identity{
		OrgID:               orgID,
		Phone:               phone,
		DisplayName:         displayName,
		Role:                role,
		PublicKey:           publicKey,
		EncryptedPrivateKey: encrypted,
	})
	if err != nil {
		return nil, err
	}

	f.logger.Info(ctx, "identity registered", "identity_id", identity.ID, "org_id", orgID)

	return &RegistrationResult{Identity: identity, PublicKey: publicKey, SeedPhrase: seedPhrase}, nil
}

// BeginLogin issues a verification code for an existing account.
func (f *Flow) BeginLogin(ctx context.Context, orgID, phone string) error {
	if _, err := f.identities.GetByOrgPhone(ctx, orgID, phone); err != nil {
		return err
	}
	return f.issueChallenge(ctx, orgID, phone)
}

// CompleteLogin consumes the verification code and proves seed-phrase
// possession by decrypting the stored private key. A wrong seed phrase is
// indistinguishable from corrupted key material; both yield
// common.ErrInvalidCredentials.
func (f *Flow) CompleteLogin(ctx context.Context, orgID, phone, code, seedPhrase, deviceInfo string) (*LoginResult, error) {
	if err := f.consumeChallenge(ctx, orgID, phone, code); err != nil {
		return nil, err
	}

	identity, err := f.identities.GetByOrgPhone(ctx, orgID, phone)
	if err != nil {
		return nil, err
	}

	wrapKey := keyvault.DeriveWrapKey(seedPhrase, phone, orgID)
	defer common.WipeByteArray(wrapKey)

	key, err := keyvault.DecryptPrivateKey(identity.EncryptedPrivateKey, wrapKey)
	if err != nil {
		return nil, err
	}

	token, err := f.sessions.Create(ctx, &stores.Session{
		IdentityID: identity.ID,
		OrgID:      identity.OrgID,
		DeviceInfo: deviceInfo,
	})
	if err != nil {
		return nil, err
	}

	f.logger.Info(ctx, "login completed", "identity_id", identity.ID, "device", deviceInfo)

	return &LoginResult{
		SessionToken: token,
		Identity:     identity,
		PublicKey:    identity.PublicKey,
		PrivateKey:   keyvault.MarshalPrivateKey(key),
	}, nil
}

// Logout revokes the session. Revoking an already revoked or expired token
// is not an error.
func (f *Flow) Logout(ctx context.Context, token string) error {
	return f.sessions.Delete(ctx, token)
}

// RevokeOtherSessions revokes every session of the caller's identity except
// the one making the request.
func (f *Flow) RevokeOtherSessions(ctx context.Context, token string) (int, error) {
	session, err := f.sessions.Get(ctx, token)
	if err != nil {
		return 0, err
	}
	return f.sessions.DeleteOthers(ctx, session.IdentityID, token)
}

// Validate resolves a session token. Callers on hot paths (the relay checks
// every frame) rely on this being a single store read.
func (f *Flow) Validate(ctx context.Context, token string) (*stores.Session, error) {
	return f.sessions.Get(ctx, token)
}

func (f *Flow) issueChallenge(ctx context.Context, orgID, phone string) error {
	code, err := makeCode()
	if err != nil {
		return err
	}
	if err := f.challenges.Set(ctx, orgID, phone, code); err != nil {
		return err
	}
	return f.sender.Send(ctx, orgID, phone, code)
}

func (f *Flow) consumeChallenge(ctx context.Context, orgID, phone, code string) error {
	stored, err := f.challenges.Take(ctx, orgID, phone)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return common.ErrInvalidOrExpiredCode
	}
	return nil
}

func makeCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrEntropyUnavailable, err)
	}
	return fmt.Sprintf("%0*d", codeDigits, n), nil
}
