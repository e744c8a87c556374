package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"osupdater/internal/infrastructure/migration"
	"osupdater/internal/session"
)

func newTestStore(t *testing.T) (*KVStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.db")

	require.NoError(t, migration.NewMigration(path, migration.DefaultEngine).Up())

	store, err := NewKVStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, path
}

func TestKVStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, ok, err := store.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, map[string]string{
		session.KeyToken:     "tok1",
		session.KeyLoginTime: "1700000000000",
	}))

	v, ok, err := store.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok1", v)

	// Перезапись существующего ключа
	require.NoError(t, store.Put(ctx, map[string]string{session.KeyToken: "tok2"}))
	v, _, err = store.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok2", v)

	require.NoError(t, store.Delete(ctx, session.KeyToken, session.KeyLoginTime, "missing"))

	_, ok, err = store.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	store, path := newTestStore(t)

	require.NoError(t, store.Put(ctx, map[string]string{session.KeyRole: "admin"}))
	require.NoError(t, store.Close())

	reopened, err := NewKVStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, session.KeyRole)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "admin", v)
}

func TestKVStore_WithSessionManager(t *testing.T) {
	ctx := context.Background()
	store, path := newTestStore(t)

	m := session.NewManager(store, 15*time.Minute, slog.Default())
	require.NoError(t, m.Login(ctx, "tok1"))
	require.NoError(t, m.ApplyRole(ctx, "admin"))
	m.Close()
	require.NoError(t, store.Close())

	// Новый процесс: новое соединение с тем же файлом
	reopened, err := NewKVStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	restored := session.NewManager(reopened, 15*time.Minute, slog.Default())
	defer restored.Close()
	require.NoError(t, restored.Restore(ctx))

	assert.True(t, restored.Active())
	assert.Equal(t, "tok1", restored.Token())
	assert.Equal(t, "admin", restored.Role())

	require.NoError(t, restored.Logout(ctx))
	_, ok, err := reopened.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}
