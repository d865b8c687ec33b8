package session

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/Purvesh8762/user-management/internal/client/models"
	"github.com/Purvesh8762/user-management/internal/common"
	"github.com/Purvesh8762/user-management/internal/dbx"
)

// Persisted keys. One coherent Session record, nothing else lives in the table.
const (
	keyCredential = "token"
	keyEmail      = "email"
	keyAdminID    = "adminID"
)

// Store exposes the Session-typed operations over the key/value repository.
// Save and Clear are idempotent; Load never returns a partially populated
// record without also reporting it via Session.IsComplete.
//
// Any driver failure is wrapped in common.ErrStorage so callers can tell
// "storage broken" apart from "not logged in".
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(db dbx.DBTX) Repository {
	return NewSQLiteRepository(db)
}

// Save persists the whole session record in a single transaction.
// Last write wins.
func (s *Store) Save(ctx context.Context, sess models.Session) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, keyCredential, sess.Credential); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyEmail, sess.Email); err != nil {
			return err
		}
		return repo.Set(ctx, keyAdminID, strconv.FormatInt(sess.AdminID, 10))
	})
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return nil
}

// Load returns whatever is currently persisted. Absent keys come back as
// zero fields; deciding whether that constitutes a usable session is the
// session gate's job.
func (s *Store) Load(ctx context.Context) (models.Session, error) {
	repo := s.repo(s.db)

	cred, err := repo.Get(ctx, keyCredential)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	email, err := repo.Get(ctx, keyEmail)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	rawID, err := repo.Get(ctx, keyAdminID)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	var adminID int64
	if rawID != "" {
		adminID, err = strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return models.Session{}, fmt.Errorf("%w: corrupt adminID record: %w", common.ErrStorage, err)
		}
	}

	return models.Session{Credential: cred, Email: email, AdminID: adminID}, nil
}

// Clear removes every session key. Safe to call when already empty.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo(s.db).Clear(ctx); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return nil
}
