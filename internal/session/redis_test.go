package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dangsuk1211/Website-banthucung/internal/domain"
)

func setupTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, time.Hour), mr
}

func TestSave_Get_RoundTrip(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	sess := New()
	sess.Cart.AddItem("p1", domain.Product{ID: "p1", Name: "Cat tree", Price: 45})
	sess.Identity = &domain.Identity{ID: "u1", Fullname: "Tran Thi B", Email: "b@example.com"}

	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	require.NotNil(t, got.Identity)
	assert.Equal(t, "u1", got.Identity.ID)

	lines := got.Cart.ItemList()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, 45.0, lines[0].Price)
}

func TestGet_Missing(t *testing.T) {
	store, _ := setupTestStore(t)

	got, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, got)
}

func TestGet_NilCartIsReplaced(t *testing.T) {
	store, mr := setupTestStore(t)

	// a session stored before the visitor touched the cart
	raw, err := json.Marshal(map[string]any{"id": "s1"})
	require.NoError(t, err)
	require.NoError(t, mr.Set(sessionKey("s1"), string(raw)))

	got, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, got.Cart)
	assert.True(t, got.Cart.IsEmpty())
}

func TestSave_SetsTTL(t *testing.T) {
	store, mr := setupTestStore(t)

	sess := New()
	require.NoError(t, store.Save(context.Background(), sess))

	ttl := mr.TTL(sessionKey(sess.ID))
	assert.True(t, ttl > 0 && ttl <= time.Hour, "session must expire, got ttl %v", ttl)
}

func TestDelete(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	sess := New()
	require.NoError(t, store.Save(ctx, sess))
	require.True(t, mr.Exists(sessionKey(sess.ID)))

	require.NoError(t, store.Delete(ctx, sess.ID))
	assert.False(t, mr.Exists(sessionKey(sess.ID)))

	// deleting a session that is already gone is fine
	assert.NoError(t, store.Delete(ctx, sess.ID))
}

// Two racing read-modify-write cycles on the same session: the store gives no
// compare-and-swap, so the last writer wins. The lost update is the documented
// behavior, not a bug to paper over.
func TestSave_LastWriteWins(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	sess := New()
	require.NoError(t, store.Save(ctx, sess))

	a, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	b, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)

	a.Cart.AddItem("p1", domain.Product{ID: "p1", Price: 10})
	require.NoError(t, store.Save(ctx, a))

	b.Cart.AddItem("p2", domain.Product{ID: "p2", Price: 5})
	require.NoError(t, store.Save(ctx, b))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	lines := got.Cart.ItemList()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ProductID, "second writer overwrote the first")
}
