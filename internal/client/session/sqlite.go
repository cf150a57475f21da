package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookarc/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/bookarc/internal/common"
	"github.com/dmitrijs2005/bookarc/internal/dbx"
	"github.com/dmitrijs2005/bookarc/internal/logging"
)

var ErrNilSession = errors.New("session is nil")

// SQLiteStore keeps the session as JSON in the metadata table under
// common.SessionKey.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLiteStore {
	if log == nil {
		log = logging.Nop()
	}
	return &SQLiteStore{db: db, log: log.With("component", "session")}
}

// Save replaces any stored session.
func (s *SQLiteStore) Save(ctx context.Context, sess *Session) error {
	if sess == nil {
		return ErrNilSession
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.SessionKey); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionKey, payload)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Read treats a value that fails to parse as no session.
func (s *SQLiteStore) Read(ctx context.Context) (*Session, error) {
	raw, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.log.Warn(ctx, "stored session is unreadable, treating as signed out", "error", err)
		return nil, nil
	}
	return &sess, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := metadata.NewSQLiteRepository(s.db).Delete(ctx, common.SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
