package sessionstore

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/craftconnect/internal/client/models"
	"github.com/dmitrijs2005/craftconnect/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/craftconnect/internal/common"
	"github.com/dmitrijs2005/craftconnect/internal/dbx"
	"github.com/dmitrijs2005/craftconnect/internal/logging"
)

// SQLStore keeps the pair in the metadata table of a SQLite or PostgreSQL
// database. Save and Clear run in a single transaction.
type SQLStore struct {
	db   *sql.DB
	repo func(dbx.DBTX) metadata.Repository
	log  logging.Logger
}

// NewSQLiteStore returns a store over a migrated SQLite database.
func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLStore {
	return &SQLStore{
		db:   db,
		repo: func(tx dbx.DBTX) metadata.Repository { return metadata.NewSQLiteRepository(tx) },
		log:  log,
	}
}

// NewPostgresStore returns a store over a migrated PostgreSQL database.
func NewPostgresStore(db *sql.DB, log logging.Logger) *SQLStore {
	return &SQLStore{
		db:   db,
		repo: func(tx dbx.DBTX) metadata.Repository { return metadata.NewPostgresRepository(tx) },
		log:  log,
	}
}

func (s *SQLStore) Save(ctx context.Context, token string, user models.User) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, common.AuthTokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserDataKey, data)
	})
	if err != nil {
		return storageError("save", err)
	}
	return nil
}

func (s *SQLStore) Load(ctx context.Context) (*Entry, error) {
	repo := s.repo(s.db)

	token, err := repo.Get(ctx, common.AuthTokenKey)
	if err != nil {
		return nil, storageError("load", err)
	}
	user, err := repo.Get(ctx, common.UserDataKey)
	if err != nil {
		return nil, storageError("load", err)
	}

	return resolve(ctx, s.log, string(token), user, s.Clear)
}

func (s *SQLStore) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Delete(ctx, common.AuthTokenKey, common.UserDataKey)
	})
	if err != nil {
		return storageError("clear", err)
	}
	return nil
}
