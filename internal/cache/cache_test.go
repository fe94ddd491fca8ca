package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSONRoundTrip(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	in := cachedThing{ID: 7, Name: "cached"}
	require.NoError(t, SetJSON(ctx, "thing:7", in, time.Minute))

	var out cachedThing
	found, err := GetJSON(ctx, "thing:7", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestGetJSONMiss(t *testing.T) {
	setupMiniredis(t)

	var out cachedThing
	found, err := GetJSON(context.Background(), "thing:404", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAsideFetchesOnMissAndCaches(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedThing) func() error {
		return func() error {
			fetches++
			*dest = cachedThing{ID: 1, Name: "from db"}
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, UserKey(1), &first, UserTTL, fetch(&first)))
	assert.Equal(t, "from db", first.Name)
	assert.Equal(t, 1, fetches)

	// Second read comes from the cache, not the fetcher.
	var second cachedThing
	require.NoError(t, Aside(ctx, UserKey(1), &second, UserTTL, fetch(&second)))
	assert.Equal(t, "from db", second.Name)
	assert.Equal(t, 1, fetches)
}

func TestAsidePropagatesFetchError(t *testing.T) {
	setupMiniredis(t)

	sentinel := errors.New("db down")
	var out cachedThing
	err := Aside(context.Background(), "thing:1", &out, time.Minute, func() error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	load := func(dest *cachedThing) func() error {
		return func() error {
			fetches++
			*dest = cachedThing{ID: 3, Name: "v"}
			return nil
		}
	}

	var a cachedThing
	require.NoError(t, Aside(ctx, PostKey(3), &a, PostTTL, load(&a)))
	InvalidatePost(ctx, 3)
	var b cachedThing
	require.NoError(t, Aside(ctx, PostKey(3), &b, PostTTL, load(&b)))
	assert.Equal(t, 2, fetches, "invalidation must evict the entry")
}

func TestNilClientIsNoOp(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "k", cachedThing{}, time.Minute))
	var out cachedThing
	found, err := GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)

	// Aside still serves the caller straight from fetch.
	err = Aside(ctx, "k", &out, time.Minute, func() error {
		out = cachedThing{ID: 9, Name: "uncached"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint(9), out.ID)
}

func TestAsideDegradesWhenRedisDies(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	var warm cachedThing
	require.NoError(t, Aside(ctx, "k", &warm, time.Minute, func() error {
		warm = cachedThing{ID: 1, Name: "v"}
		return nil
	}))

	mr.Close()

	// With the server gone the cache read fails; the fetch still answers.
	var out cachedThing
	err := Aside(ctx, "k", &out, time.Minute, func() error {
		out = cachedThing{ID: 1, Name: "direct"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "direct", out.Name)
}
