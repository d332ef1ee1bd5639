package identities

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vaultchat/vaultchat/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	repo, err := NewPostgresRepository(db)
	if err != nil {
		t.Fatalf("NewPostgresRepository error: %v", err)
	}
	return repo, mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+identities\s*\(org_id,\s*phone,\s*display_name,\s*role,\s*public_key,\s*encrypted_private_key\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+id,\s*created_at\s*$`

	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow("42", created)
	mock.ExpectQuery(q).
		WithArgs("org1", "+15550001", "Alice", "member", []byte("pub"), []byte("enc")).
		WillReturnRows(rows)

	identity := &Identity{
		OrgID: "org1", Phone: "+15550001", DisplayName: "Alice", Role: "member",
		PublicKey: []byte("pub"), EncryptedPrivateKey: []byte("enc"),
	}
	got, err := repo.Create(context.Background(), identity)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "42" || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected identity: %+v", got)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+identities`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &Identity{OrgID: "org1", Phone: "+15550001"})
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+identities`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &Identity{OrgID: "org1", Phone: "+15550001"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByOrgPhone_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "org_id", "phone", "display_name", "role", "public_key", "encrypted_private_key", "created_at"}).
		AddRow("42", "org1", "+15550001", "Alice", "member", []byte("pub"), []byte("enc"), created)

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+identities\s+WHERE\s+org_id\s*=\s*\$1\s+AND\s+phone\s*=\s*\$2`).
		WithArgs("org1", "+15550001").
		WillReturnRows(rows)

	got, err := repo.GetByOrgPhone(context.Background(), "org1", "+15550001")
	if err != nil {
		t.Fatalf("GetByOrgPhone error: %v", err)
	}
	if got.ID != "42" || got.DisplayName != "Alice" {
		t.Fatalf("unexpected identity: %+v", got)
	}
}

func TestGetByOrgPhone_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+identities\s+WHERE\s+org_id`).
		WithArgs("org1", "+15559999").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByOrgPhone(context.Background(), "org1", "+15559999")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByOrgOrPhone_MatchesEitherField(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	q := `(?s)^SELECT\s+.*FROM\s+identities\s+WHERE\s+org_id\s*=\s*\$1\s+OR\s+phone\s*=\s*\$2\s+LIMIT\s+1`

	rows := sqlmock.NewRows([]string{"id", "org_id", "phone", "display_name", "role", "public_key", "encrypted_private_key", "created_at"}).
		AddRow("42", "org1", "+15550001", "Alice", "member", []byte("pub"), []byte("enc"), created)
	mock.ExpectQuery(q).
		WithArgs("org1", "+15550009").
		WillReturnRows(rows)

	got, err := repo.GetByOrgOrPhone(context.Background(), "org1", "+15550009")
	if err != nil {
		t.Fatalf("GetByOrgOrPhone error: %v", err)
	}
	if got.ID != "42" {
		t.Fatalf("unexpected identity: %+v", got)
	}
}

func TestGetByOrgOrPhone_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+identities\s+WHERE\s+org_id\s*=\s*\$1\s+OR\s+phone\s*=\s*\$2`).
		WithArgs("org9", "+15559999").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByOrgOrPhone(context.Background(), "org9", "+15559999")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+identities\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "org_id", "phone", "display_name", "role", "public_key", "created_at"}).
		AddRow("1", "org1", "+15550001", "Alice", "member", []byte("pub1"), created).
		AddRow("2", "org2", "+15550002", "Bob", "member", []byte("pub2"), created)

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+identities\s+ORDER\s+BY\s+display_name`).
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].DisplayName != "Alice" || got[1].DisplayName != "Bob" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestList_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+identities\s+ORDER\s+BY`).
		WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
