package config

import "testing"

func TestFromEnvDefaultsWhenUnset(t *testing.T) {
	t.Setenv("TRACKS_DEFAULT_BPM", "")
	t.Setenv("TRACKS_HTTP_ADDR", "")
	c := FromEnv()
	if c.DefaultBPM != 120 {
		t.Errorf("expected default BPM 120, got %v", c.DefaultBPM)
	}
	if c.HTTPAddr != ":8090" {
		t.Errorf("expected default HTTP addr :8090, got %q", c.HTTPAddr)
	}
	if c.ShardCount != 4 {
		t.Errorf("expected default shard count 4, got %d", c.ShardCount)
	}
}

func TestFromEnvHonorsOverrides(t *testing.T) {
	t.Setenv("TRACKS_DEFAULT_BPM", "174")
	t.Setenv("TRACKS_SHARD_COUNT", "8")
	c := FromEnv()
	if c.DefaultBPM != 174 {
		t.Errorf("expected overridden BPM 174, got %v", c.DefaultBPM)
	}
	if c.ShardCount != 8 {
		t.Errorf("expected overridden shard count 8, got %d", c.ShardCount)
	}
}

func TestFromEnvIgnoresUnparseableOverrides(t *testing.T) {
	t.Setenv("TRACKS_REDIS_DB", "not-a-number")
	c := FromEnv()
	if c.RedisDB != 0 {
		t.Errorf("expected fallback 0 for unparseable TRACKS_REDIS_DB, got %d", c.RedisDB)
	}
}
