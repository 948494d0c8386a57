package shard

import "testing"

func TestShardForIsStableAcrossCalls(t *testing.T) {
	r := New(4)
	first := r.ShardFor("song-42")
	for i := 0; i < 10; i++ {
		if got := r.ShardFor("song-42"); got != first {
			t.Fatalf("ShardFor should be deterministic, got %q then %q", first, got)
		}
	}
}

func TestShardIndexForIsWithinRange(t *testing.T) {
	r := New(6)
	for _, id := range []string{"a", "b", "c", "song-1", "song-2"} {
		idx := r.ShardIndexFor(id)
		if idx < 0 || idx >= r.Count() {
			t.Errorf("ShardIndexFor(%q) = %d, want [0,%d)", id, idx, r.Count())
		}
	}
}

func TestShardDistributesAcrossMultipleNodes(t *testing.T) {
	r := New(8)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[r.ShardFor(idFor(i))] = true
		if len(seen) > 1 {
			return
		}
	}
	t.Errorf("expected ids to spread across more than one shard, got %d distinct shard(s)", len(seen))
}

func idFor(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	return string(letters[i%len(letters)]) + string(letters[(i/len(letters))%len(letters)])
}

func TestNewClampsNonPositiveCountToOne(t *testing.T) {
	r := New(0)
	if r.Count() != 1 {
		t.Errorf("expected Count() 1 for New(0), got %d", r.Count())
	}
}
