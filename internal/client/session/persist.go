package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/inkwell/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/inkwell/internal/common"
	"github.com/dmitrijs2005/inkwell/internal/dbx"
)

// ErrCorruptSnapshot is returned by Load when the stored bytes do not decode.
var ErrCorruptSnapshot = errors.New("corrupt session snapshot")

// Persister is the durable storage medium of the session.
type Persister interface {
	// Load returns (nil, nil) when nothing is stored.
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Clear(ctx context.Context) error
}

// SQLitePersister keeps the snapshot as JSON in the metadata table.
type SQLitePersister struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLitePersister(db *sql.DB) *SQLitePersister {
	return &SQLitePersister{db: db, now: time.Now}
}

func (p *SQLitePersister) Load(ctx context.Context) (*Snapshot, error) {
	b, err := metadata.NewSQLiteRepository(p.db).Get(ctx, common.SessionStorageKey)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(b) == 0 {
		return nil, nil
	}

	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return &snap, nil
}

// Save writes the snapshot and its timestamp in one transaction.
func (p *SQLitePersister) Save(ctx context.Context, snap Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	savedAt := p.now().UTC().Format(time.RFC3339Nano)

	err = dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionStorageKey, b); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionSavedAtKey, []byte(savedAt))
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (p *SQLitePersister) Clear(ctx context.Context) error {
	if err := metadata.NewSQLiteRepository(p.db).DeletePrefix(ctx, common.SessionKeyPrefix); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// SavedAt returns when the snapshot was last written, zero if never.
func (p *SQLitePersister) SavedAt(ctx context.Context) (time.Time, error) {
	b, err := metadata.NewSQLiteRepository(p.db).Get(ctx, common.SessionSavedAtKey)
	if err != nil || b == nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, string(b))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", common.SessionSavedAtKey, err)
	}
	return t, nil
}
