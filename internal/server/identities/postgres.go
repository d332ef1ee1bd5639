package identities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vaultchat/vaultchat/internal/common"
	"github.com/vaultchat/vaultchat/internal/dbx"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, identity *Identity) (*Identity, error) {

	query :=
		`INSERT INTO identities (org_id, phone, display_name, role, public_key, encrypted_private_key)
         VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		identity.OrgID, identity.Phone, identity.DisplayName, identity.Role,
		identity.PublicKey, identity.EncryptedPrivateKey).Scan(&identity.ID, &identity.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return identity, nil
}

func (r *PostgresRepository) GetByOrgPhone(ctx context.Context, orgID, phone string) (*Identity, error) {
	query :=
		`SELECT id, org_id, phone, display_name, role, public_key, encrypted_private_key, created_at
		 FROM identities
		 WHERE org_id = $1 AND phone = $2
		 `

	identity := &Identity{}
	err := r.db.QueryRowContext(ctx, query, orgID, phone).Scan(
		&identity.ID, &identity.OrgID, &identity.Phone, &identity.DisplayName,
		&identity.Role, &identity.PublicKey, &identity.EncryptedPrivateKey, &identity.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return identity, nil
}

func (r *PostgresRepository) GetByOrgOrPhone(ctx context.Context, orgID, phone string) (*Identity, error) {
	query :=
		`SELECT id, org_id, phone, display_name, role, public_key, encrypted_private_key, created_at
		 FROM identities
		 WHERE org_id = $1 OR phone = $2
		 LIMIT 1
		 `

	identity := &Identity{}
	err := r.db.QueryRowContext(ctx, query, orgID, phone).Scan(
		&identity.ID, &identity.OrgID, &identity.Phone, &identity.DisplayName,
		&identity.Role, &identity.PublicKey, &identity.EncryptedPrivateKey, &identity.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return identity, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Identity, error) {
	query :=
		`SELECT id, org_id, phone, display_name, role, public_key, encrypted_private_key, created_at
		 FROM identities
		 WHERE id = $1
		 `

	identity := &Identity{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&identity.ID, &identity.OrgID, &identity.Phone, &identity.DisplayName,
		&identity.Role, &identity.PublicKey, &identity.EncryptedPrivateKey, &identity.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return identity, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Identity, error) {
	query :=
		`SELECT id, org_id, phone, display_name, role, public_key, created_at
		 FROM identities
		 ORDER BY display_name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*Identity
	for rows.Next() {
		identity := &Identity{}
		err := rows.Scan(&identity.ID, &identity.OrgID, &identity.Phone,
			&identity.DisplayName, &identity.Role, &identity.PublicKey, &identity.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, identity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
