package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonaJoost/wg-abrechner/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testSnapshot() *storage.Snapshot {
	return &storage.Snapshot{
		Version: storage.SnapshotVersion,
		Members: []storage.MemberRecord{
			{Name: "Jona", Balance: 42.5},
			{Name: "Katha", Balance: -12.0},
		},
		Users: []storage.UserRecord{
			{Name: "Administrator", Username: "admin", PasswordHash: "adminhash", Admin: true},
			{Name: "Jona", Username: "jona", PasswordHash: "jonahash", LinkedMember: "Jona"},
		},
		Transactions: []storage.TransactionRecord{
			{
				Date:          time.Date(2024, time.July, 8, 0, 0, 0, 0, time.UTC),
				Amount:        25.5,
				Payer:         "Katha",
				Beneficiaries: []string{"Jona", "Katha", "Jona"},
				Description:   "supermarket",
				Settled:       true,
			},
			{
				Date:          time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
				Amount:        900.0,
				Payer:         "Jona",
				Beneficiaries: []string{"Jona", "Katha"},
				Description:   "rent july",
			},
		},
	}
}

func TestLoadEmptyStore(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	snap := testSnapshot()
	require.NoError(t, store.Save(ctx, snap))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, storage.SnapshotVersion, loaded.Version)
	assert.Equal(t, snap.Members, loaded.Members)
	assert.Equal(t, snap.Users, loaded.Users)

	require.Len(t, loaded.Transactions, 2)
	for i, rec := range loaded.Transactions {
		want := snap.Transactions[i]
		assert.NotEmpty(t, rec.ID, "the store assigns transaction IDs")
		assert.True(t, rec.Date.Equal(want.Date), "date mismatch at %d", i)
		assert.Equal(t, want.Amount, rec.Amount)
		assert.Equal(t, want.Payer, rec.Payer)
		assert.Equal(t, want.Beneficiaries, rec.Beneficiaries, "order and duplicates preserved")
		assert.Equal(t, want.Description, rec.Description)
		assert.Equal(t, want.Settled, rec.Settled)
	}
}

func TestSaveReplacesPreviousState(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSnapshot()))

	smaller := &storage.Snapshot{
		Members: []storage.MemberRecord{{Name: "Lucas", Balance: 0}},
	}
	require.NoError(t, store.Save(ctx, smaller))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Members, 1)
	assert.Equal(t, "Lucas", loaded.Members[0].Name)
	assert.Empty(t, loaded.Users)
	assert.Empty(t, loaded.Transactions)
	assert.Equal(t, storage.SnapshotVersion, loaded.Version, "an unset version defaults to the current format")
}

func TestSaveNilSnapshot(t *testing.T) {
	store := newTestStore(t)
	require.Error(t, store.Save(context.Background(), nil))
}

func TestReopenKeepsState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.db")
	ctx := context.Background()

	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, testSnapshot()))
	require.NoError(t, store.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Members, 2)
	assert.Len(t, loaded.Transactions, 2)
}
