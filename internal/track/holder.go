// Holder is a generational slot map of tracks keyed by Key: removed
// slots bump their generation, so handles to removed tracks go stale
// instead of dangling.
package track

import "github.com/bsq-ports/tracks-rs/internal/engineerr"

// Key is a generational handle to a Track: stale handles (from a
// removed-and-reused slot) are detected by generation mismatch rather
// than dereferenced.
type Key struct {
	index      uint32
	generation uint32
}

type slot struct {
	track      *Track
	generation uint32
	occupied   bool
}

// Holder owns every live Track, addressable by Key or by name.
type Holder struct {
	slots  []slot
	free   []uint32
	byName map[string]Key
}

// NewHolder builds an empty Holder.
func NewHolder() *Holder {
	return &Holder{byName: make(map[string]Key)}
}

// Add inserts t, returning its Key. Duplicate names are a fatal
// usage error.
func (h *Holder) Add(t *Track) (Key, error) {
	if _, exists := h.byName[t.Name]; exists {
		return Key{}, engineerr.DuplicateName("track", t.Name)
	}

	var idx uint32
	if n := len(h.free); n > 0 {
		idx = h.free[n-1]
		h.free = h.free[:n-1]
		h.slots[idx].track = t
		h.slots[idx].occupied = true
	} else {
		idx = uint32(len(h.slots))
		h.slots = append(h.slots, slot{track: t, generation: 0, occupied: true})
	}

	key := Key{index: idx, generation: h.slots[idx].generation}
	h.byName[t.Name] = key
	return key, nil
}

// Get dereferences a Key, reporting false for a stale or out-of-range
// handle.
func (h *Holder) Get(key Key) (*Track, bool) {
	if int(key.index) >= len(h.slots) {
		return nil, false
	}
	s := h.slots[key.index]
	if !s.occupied || s.generation != key.generation {
		return nil, false
	}
	return s.track, true
}

// Remove evicts the track at key, bumping its slot's generation so
// existing handles become stale.
func (h *Holder) Remove(key Key) bool {
	if int(key.index) >= len(h.slots) {
		return false
	}
	s := &h.slots[key.index]
	if !s.occupied || s.generation != key.generation {
		return false
	}
	delete(h.byName, s.track.Name)
	s.track = nil
	s.occupied = false
	s.generation++
	h.free = append(h.free, key.index)
	return true
}

// KeyByName resolves a track's current Key by name.
func (h *Holder) KeyByName(name string) (Key, bool) {
	k, ok := h.byName[name]
	return k, ok
}

// ByName resolves a track directly by name.
func (h *Holder) ByName(name string) (*Track, bool) {
	k, ok := h.byName[name]
	if !ok {
		return nil, false
	}
	return h.Get(k)
}

// Len reports the number of live tracks.
func (h *Holder) Len() int { return len(h.byName) }

// All returns every live track keyed by name. Iteration is a
// host-facing convenience (e.g. internal/livefeed's tick-diff
// broadcaster), not a hot path, so it reuses byName rather than a
// second bookkeeping structure.
func (h *Holder) All() map[string]*Track {
	out := make(map[string]*Track, len(h.byName))
	for name, key := range h.byName {
		out[name] = h.slots[key.index].track
	}
	return out
}
