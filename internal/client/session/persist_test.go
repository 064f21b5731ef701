package session

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/inkwell/internal/client/models"
	"github.com/dmitrijs2005/inkwell/internal/common"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return db
}

func sampleUser() *models.User {
	return &models.User{
		ID:          "65f1c0",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Phone:       "5551234567",
		DateOfBirth: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Preferences: []string{"technology", "health & fitness"},
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC),
	}
}

func TestSQLitePersister_RoundTrip(t *testing.T) {
	ctx := context.Background()
	p := NewSQLitePersister(setupDB(t))

	want := Snapshot{User: sampleUser(), OTPVerified: true}
	require.NoError(t, p.Save(ctx, want))

	got, err := p.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreRoundTripThroughSQLite(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	s1 := NewStore(WithPersister(NewSQLitePersister(db)))
	tk := s1.Begin(ctx, KindLogin)
	before, ok := s1.Resolve(ctx, tk, Action{Type: LoginSuccess, User: sampleUser()})
	require.True(t, ok)

	s2 := NewStore(WithPersister(NewSQLitePersister(db)))
	after, err := s2.Load(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(before.User, after.User); diff != "" {
		t.Errorf("rehydrated user mismatch (-before +after):\n%s", diff)
	}
}

func TestSQLitePersister_LoadEmpty(t *testing.T) {
	got, err := NewSQLitePersister(setupDB(t)).Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLitePersister_LoadCorrupt(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES (?, ?)`, common.SessionStorageKey, []byte("{not json"))
	require.NoError(t, err)

	_, err = NewSQLitePersister(db).Load(context.Background())
	require.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestSQLitePersister_SavedAtAndClear(t *testing.T) {
	ctx := context.Background()
	p := NewSQLitePersister(setupDB(t))
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	at, err := p.SavedAt(ctx)
	require.NoError(t, err)
	assert.True(t, at.IsZero())

	require.NoError(t, p.Save(ctx, Snapshot{User: sampleUser()}))
	at, err = p.SavedAt(ctx)
	require.NoError(t, err)
	assert.True(t, now.Equal(at))

	require.NoError(t, p.Clear(ctx))
	got, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	at, err = p.SavedAt(ctx)
	require.NoError(t, err)
	assert.True(t, at.IsZero())
}

func TestSQLitePersister_SaveRollsBackOnCommitError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("commit failed")
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO metadata`).WithArgs(common.SessionStorageKey, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO metadata`).WithArgs(common.SessionSavedAtKey, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(boom)

	err = NewSQLitePersister(db).Save(context.Background(), Snapshot{User: sampleUser()})
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "save session")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLitePersister_SaveRollsBackOnExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("disk I/O error")
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO metadata`).WillReturnError(boom)
	mock.ExpectRollback()

	err = NewSQLitePersister(db).Save(context.Background(), Snapshot{OTPVerified: true})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
