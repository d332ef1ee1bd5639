package db

import (
	"context"
	"database/sql"

	"github.com/vaultchat/vaultchat/internal/server/identities"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Identities() identities.Repository
}
