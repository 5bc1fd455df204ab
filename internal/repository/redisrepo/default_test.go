package redisrepo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type testEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newTestRepo(t *testing.T) (*miniredis.Miniredis, *RedisRepository) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return mr, New(rdb)
}

func TestSetJSONAndGet(t *testing.T) {
	_, r := newTestRepo(t)
	ctx := context.Background()

	if err := r.Default.SetJSON(ctx, "entry:1", testEntry{ID: 1, Name: "Chile"}, time.Hour); err != nil {
		t.Fatalf("set json: %v", err)
	}

	entry, err := Get[testEntry](r.Default, ctx, "entry:1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if entry == nil || entry.Name != "Chile" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestGetMissingKey(t *testing.T) {
	_, r := newTestRepo(t)

	if _, err := Get[testEntry](r.Default, context.Background(), "entry:missing"); err != redis.Nil {
		t.Fatalf("err = %v, want redis.Nil", err)
	}
}

func TestGetNullValue(t *testing.T) {
	_, r := newTestRepo(t)
	ctx := context.Background()

	if err := r.Default.SetJSON(ctx, "entry:null", nil, time.Hour); err != nil {
		t.Fatalf("set json: %v", err)
	}

	entry, err := Get[testEntry](r.Default, ctx, "entry:null")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if entry != nil {
		t.Fatalf("expected nil entry for cached null")
	}
}

func TestGetMany(t *testing.T) {
	_, r := newTestRepo(t)
	ctx := context.Background()

	entries := []*testEntry{{ID: 1, Name: "Chile"}, {ID: 2, Name: "Peru"}}
	if err := r.Default.SetJSON(ctx, "entries:20:0", entries, time.Hour); err != nil {
		t.Fatalf("set json: %v", err)
	}

	got, err := GetMany[testEntry](r.Default, ctx, "entries:20:0")
	if err != nil {
		t.Fatalf("get many: %v", err)
	}
	if len(got) != 2 || got[1].Name != "Peru" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestKeysAndDel(t *testing.T) {
	_, r := newTestRepo(t)
	ctx := context.Background()

	for _, key := range []string{"country:1", "country:2", "place:1"} {
		if err := r.Default.Set(ctx, key, "x", time.Hour); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}

	keys, err := r.Default.Keys(ctx, "country:*").Result()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("len(keys) = %d, want 2", len(keys))
	}

	if err := r.Default.Del(ctx, keys...).Err(); err != nil {
		t.Fatalf("del: %v", err)
	}

	left, err := r.Default.Keys(ctx, "country:*").Result()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected country keys to be deleted")
	}
}
