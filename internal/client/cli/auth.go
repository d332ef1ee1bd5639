package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/vaultchat/vaultchat/internal/client/session"
	"github.com/vaultchat/vaultchat/internal/common"
)

// getSimpleText and getSecret are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getSecret = GetSecret

// Register walks the two-step registration: phone, verification code,
// display name. On success it prints the seed phrase exactly once; there is
// no way to retrieve it afterwards.
func (a *App) Register(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone number", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.BeginRegistration(ctx, phone); err != nil {
		printlnFn("Registration failed:", err)
		return err
	}

	code, err := getSimpleText(a.reader, "Enter verification code", os.Stdout)
	if err != nil {
		return err
	}
	displayName, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	reg, err := a.client.CompleteRegistration(ctx, phone, code, displayName)
	if err != nil {
		printlnFn("Registration failed:", err)
		return err
	}

	printlnFn("Registered as", reg.IdentityID)
	printlnFn("")
	printlnFn("Your recovery seed phrase (write it down, it is shown ONCE):")
	printlnFn("")
	printlnFn("   " + reg.SeedPhrase)
	printlnFn("")
	printlnFn("Now run 'login' to start a session.")
	return nil
}

// Login walks the two-step login, recovers the private key from the seed
// phrase and connects the relay stream.
func (a *App) Login(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone number", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.BeginLogin(ctx, phone); err != nil {
		printlnFn("Login failed:", err)
		return err
	}

	code, err := getSimpleText(a.reader, "Enter verification code", os.Stdout)
	if err != nil {
		return err
	}

	seedPhrase, err := getSecret("Enter seed phrase", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(seedPhrase)

	deviceInfo, _ := os.Hostname()

	ls, err := a.client.CompleteLogin(ctx, phone, code, string(seedPhrase), deviceInfo)
	if err != nil {
		printlnFn("Login failed:", err)
		return err
	}

	sess, err := session.FromLogin(ls)
	if err != nil {
		return err
	}
	a.session = sess

	if err := a.connect(ctx); err != nil {
		printlnFn("Relay connection failed:", err)
		return err
	}

	printlnFn("Logged in as", sess.IdentityID)
	return nil
}

// Logout closes the relay stream and revokes the session server-side.
func (a *App) Logout(ctx context.Context) error {
	a.disconnect()
	if err := a.client.Logout(ctx); err != nil {
		return err
	}
	a.session = nil
	printlnFn("Logged out")
	return nil
}

// Revoke revokes every other session of this identity.
func (a *App) Revoke(ctx context.Context) error {
	revoked, err := a.client.RevokeOtherSessions(ctx)
	if err != nil {
		printlnFn("Revoke failed:", err)
		return err
	}
	printlnFn(fmt.Sprintf("Revoked %d other session(s)", revoked))
	return nil
}
