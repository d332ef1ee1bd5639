package identities

import "time"

// Identity is a registered account within an organization. The private key
// is stored only in encrypted form; the server cannot decrypt it without the
// wrap key derived from the owner's seed phrase.
type Identity struct {
	ID                  string
	OrgID               string
	Phone               string
	DisplayName         string
	Role                string
	PublicKey           []byte
	EncryptedPrivateKey []byte
	CreatedAt           time.Time
}
