package identities

import "context"

type Repository interface {
	Create(ctx context.Context, identity *Identity) (*Identity, error)
	GetByOrgPhone(ctx context.Context, orgID, phone string) (*Identity, error)
	// GetByOrgOrPhone finds an identity claiming either attribute. Both are
	// individually unique, so registration must refuse a duplicate of either.
	GetByOrgOrPhone(ctx context.Context, orgID, phone string) (*Identity, error)
	GetByID(ctx context.Context, id string) (*Identity, error)
	List(ctx context.Context) ([]*Identity, error)
}
