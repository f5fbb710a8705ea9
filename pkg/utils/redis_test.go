package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"voiceagent-bridge/internal/config"
)

// slotScripter evaluates the slot scripts in memory.
type slotScripter struct {
	counts map[string]int
	ttls   map[string]int64
}

func newSlotScripter() *slotScripter {
	return &slotScripter{counts: map[string]int{}, ttls: map[string]int64{}}
}

func (s *slotScripter) EvalSha(ctx context.Context, sha string, keys []string, args ...interface{}) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	key := keys[0]
	switch sha {
	case slotAcquireScript.Hash():
		s.counts[key]++
		s.ttls[key] = args[1].(int64)
		if s.counts[key] > args[0].(int) {
			s.counts[key]--
			cmd.SetVal(int64(0))
			return cmd
		}
		cmd.SetVal(int64(1))
	case slotReleaseScript.Hash():
		s.counts[key]--
		if s.counts[key] <= 0 {
			delete(s.counts, key)
			delete(s.ttls, key)
		}
		cmd.SetVal(int64(1))
	default:
		cmd.SetErr(errors.New("NOSCRIPT"))
	}
	return cmd
}

func (s *slotScripter) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	cmd.SetErr(errors.New("unexpected EVAL"))
	return cmd
}

func (s *slotScripter) EvalRO(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	return s.Eval(ctx, script, keys, args...)
}

func (s *slotScripter) EvalShaRO(ctx context.Context, sha string, keys []string, args ...interface{}) *redis.Cmd {
	return s.EvalSha(ctx, sha, keys, args...)
}

func (s *slotScripter) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	cmd := redis.NewBoolSliceCmd(ctx)
	cmd.SetVal(make([]bool, len(hashes)))
	return cmd
}

func (s *slotScripter) ScriptLoad(ctx context.Context, script string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	cmd.SetVal(script)
	return cmd
}

func TestSlots_CapPerKey(t *testing.T) {
	ctx := context.Background()
	rdb := newSlotScripter()

	for i := 0; i < 2; i++ {
		ok, err := AcquireSlot(ctx, rdb, "ws-1", 2, time.Minute)
		if err != nil || !ok {
			t.Fatalf("acquire %d: ok=%v err=%v", i, ok, err)
		}
	}
	if ok, _ := AcquireSlot(ctx, rdb, "ws-1", 2, time.Minute); ok {
		t.Fatalf("expected third acquire to be refused")
	}
	if ok, _ := AcquireSlot(ctx, rdb, "ws-2", 2, time.Minute); !ok {
		t.Fatalf("expected other workspace to be unaffected")
	}
	if rdb.ttls["ws-1"] != time.Minute.Milliseconds() {
		t.Fatalf("expected ttl refreshed, got %d", rdb.ttls["ws-1"])
	}

	if err := ReleaseSlot(ctx, rdb, "ws-1"); err != nil {
		t.Fatalf("release: %v", err)
	}
	if ok, _ := AcquireSlot(ctx, rdb, "ws-1", 2, time.Minute); !ok {
		t.Fatalf("expected a freed slot to be reusable")
	}

	_ = ReleaseSlot(ctx, rdb, "ws-2")
	if _, held := rdb.counts["ws-2"]; held {
		t.Fatalf("expected key dropped once every slot is released")
	}
}

func TestSlots_ValidatesArgs(t *testing.T) {
	ctx := context.Background()
	if _, err := AcquireSlot(ctx, nil, "k", 1, time.Second); !errors.Is(err, ErrNilRedis) {
		t.Fatalf("expected ErrNilRedis, got %v", err)
	}
	if err := ReleaseSlot(ctx, nil, "k"); !errors.Is(err, ErrNilRedis) {
		t.Fatalf("expected ErrNilRedis, got %v", err)
	}
	if _, err := AcquireSlot(ctx, newSlotScripter(), "k", 0, time.Second); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot for zero limit, got %v", err)
	}
	if _, err := AcquireSlot(ctx, newSlotScripter(), "", 1, time.Second); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot for empty key, got %v", err)
	}
}

func TestOpenRedis_RequiresHostAndPort(t *testing.T) {
	if _, err := OpenRedis(context.Background(), config.RedisConfig{}); err == nil {
		t.Fatalf("expected error for empty config")
	}
}

func TestRedisOptions_FromConfig(t *testing.T) {
	o := redisOptions(config.RedisConfig{Host: "redis", Port: 6380, Password: "pw", DB: 3, PoolSize: 7})
	if o.Addr != "redis:6380" || o.Password != "pw" || o.DB != 3 || o.PoolSize != 7 {
		t.Fatalf("unexpected options: %+v", o)
	}
}
