//go:build unit

package kvstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCmdable struct {
	data    map[string]string
	ttls    map[string]time.Duration
	failErr error
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	switch {
	case f.failErr != nil:
		cmd.SetErr(f.failErr)
	default:
		v, ok := f.data[key]
		if !ok {
			cmd.SetErr(redis.Nil)
		} else {
			cmd.SetVal(v)
		}
	}
	return cmd
}

func (f *fakeCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	if f.failErr != nil {
		cmd.SetErr(f.failErr)
		return cmd
	}
	f.data[key] = value.(string)
	f.ttls[key] = expiration
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "del")
	if f.failErr != nil {
		cmd.SetErr(f.failErr)
		return cmd
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	cmd.SetVal(n)
	return cmd
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key is not an error", func(t *testing.T) {
		r := NewRedis(newFakeCmdable(), time.Hour)
		_, found, err := r.Get(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set applies ttl and get returns value", func(t *testing.T) {
		fake := newFakeCmdable()
		r := NewRedis(fake, time.Hour)

		require.NoError(t, r.Set(ctx, "booking_submissions_fp_1", `{"attempts":[1]}`))
		assert.Equal(t, time.Hour, fake.ttls["booking_submissions_fp_1"])

		v, found, err := r.Get(ctx, "booking_submissions_fp_1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `{"attempts":[1]}`, v)

		require.NoError(t, r.Remove(ctx, "booking_submissions_fp_1"))
		_, found, _ = r.Get(ctx, "booking_submissions_fp_1")
		assert.False(t, found)
	})

	t.Run("backend errors are wrapped", func(t *testing.T) {
		fake := newFakeCmdable()
		fake.failErr = errors.New("connection refused")
		r := NewRedis(fake, time.Hour)

		_, _, err := r.Get(ctx, "k")
		assert.ErrorContains(t, err, "connection refused")
		assert.ErrorContains(t, r.Set(ctx, "k", "v"), "redis set k")
		assert.ErrorContains(t, r.Remove(ctx, "k"), "redis del k")
	})
}
