package track

import (
	"testing"

	"github.com/bsq-ports/tracks-rs/internal/value"
)

func TestValuePropertyDefaultsToEmpty(t *testing.T) {
	p := NewValueProperty(value.Float)
	if _, ok := p.Get(); ok {
		t.Errorf("new property should be empty")
	}
}

func TestValuePropertySetAndGetRoundTrips(t *testing.T) {
	p := NewValueProperty(value.Vec3)
	if err := p.Set(value.NewVec3(1, 2, 3)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok := p.Get()
	if !ok {
		t.Fatalf("expected a value after Set")
	}
	if v.At(0) != 1 || v.At(1) != 2 || v.At(2) != 3 {
		t.Errorf("round-trip mismatch: %v", v)
	}
}

func TestValuePropertySetRejectsKindMismatch(t *testing.T) {
	p := NewValueProperty(value.Float)
	if err := p.Set(value.NewVec3(1, 2, 3)); err == nil {
		t.Errorf("expected kind mismatch error")
	}
}

func TestValuePropertyLastUpdatedDoesNotMoveBackwardsOnSet(t *testing.T) {
	p := NewValueProperty(value.Float)
	before := p.LastUpdated()
	if err := p.Set(value.Float32(1)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !p.LastUpdated().After(before) && p.LastUpdated() != before {
		t.Errorf("LastUpdated should not move backwards")
	}
}

func TestPropertiesMapV2AliasResolvesToCanonicalSlot(t *testing.T) {
	m := NewPropertiesMap()
	byV1, ok := m.Get("position")
	if !ok {
		t.Fatalf("position should resolve")
	}
	byV2, ok := m.Get("_position")
	if !ok {
		t.Fatalf("_position should resolve")
	}
	if byV1 != byV2 {
		t.Errorf("v1 and v2 aliases should resolve to the identical slot")
	}
}

func TestPropertiesMapInsertCustomExtension(t *testing.T) {
	m := NewPropertiesMap()
	custom := NewValueProperty(value.Float)
	_ = custom.Set(value.Float32(9.99))
	m.Insert("custom_prop", custom)

	got, ok := m.Get("custom_prop")
	if !ok {
		t.Fatalf("custom_prop should be registered")
	}
	v, _ := got.Get()
	if v.At(0) != 9.99 {
		t.Errorf("want 9.99, got %v", v.At(0))
	}
}

func TestPropertiesMapInsertOnBuiltinOverwritesInPlace(t *testing.T) {
	m := NewPropertiesMap()
	original := m.Position
	replacement := NewValueProperty(value.Vec3)
	_ = replacement.Set(value.NewVec3(1, 1, 1))
	m.Insert("position", replacement)

	if m.Position != original {
		t.Errorf("builtin slot identity should be preserved across Insert")
	}
	v, ok := m.Position.Get()
	if !ok || v.At(0) != 1 {
		t.Errorf("builtin slot should carry the replacement's contents")
	}
}

func TestPropertiesMapAllIncludesBuiltinsAndExtensions(t *testing.T) {
	m := NewPropertiesMap()
	custom := NewValueProperty(value.Float)
	m.Insert("custom_prop", custom)

	all := m.All()
	if all["dissolve"] != m.Dissolve {
		t.Errorf("All() should expose the builtin dissolve slot by its canonical name")
	}
	if all["custom_prop"] != custom {
		t.Errorf("All() should expose extension slots by their registered id")
	}
	if len(all) != 15 {
		t.Errorf("expected 15 entries (14 builtin value slots + one extension), got %d", len(all))
	}
}

func TestPathPropertiesMapHasNoTimeSlot(t *testing.T) {
	m := NewPathPropertiesMap()
	if m.ByName(Time) != nil {
		t.Errorf("path properties should have no Time slot")
	}
	if m.ByName(Position) == nil {
		t.Errorf("path properties should have a Position slot")
	}
}

func TestHolderAddGetRemoveAndStaleHandle(t *testing.T) {
	h := NewHolder()
	key, err := h.Add(NewTrack("beam"))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, ok := h.Get(key); !ok {
		t.Fatalf("expected to find track by fresh key")
	}

	h.Remove(key)
	if _, ok := h.Get(key); ok {
		t.Errorf("stale key should not resolve after Remove")
	}

	key2, err := h.Add(NewTrack("beam"))
	if err != nil {
		t.Fatalf("re-Add after Remove: %v", err)
	}
	if key2.index == key.index && key2.generation == key.generation {
		t.Errorf("reused slot should carry a bumped generation")
	}
}

func TestHolderDuplicateNameIsError(t *testing.T) {
	h := NewHolder()
	if _, err := h.Add(NewTrack("beam")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := h.Add(NewTrack("beam")); err == nil {
		t.Errorf("expected duplicate name error")
	}
}

func TestTrackGameObjectCallbacksFireOnAddRemove(t *testing.T) {
	tr := NewTrack("beam")
	var events []string
	id := tr.RegisterGameObjectCallback(func(obj GameObjectID, added bool) {
		if added {
			events = append(events, "add:"+string(obj))
		} else {
			events = append(events, "remove:"+string(obj))
		}
	})
	tr.RegisterGameObject("go1")
	tr.RemoveGameObject("go1")
	tr.RemoveGameObjectCallback(id)
	tr.RegisterGameObject("go2")

	want := []string{"add:go1", "remove:go1"}
	if len(events) != len(want) {
		t.Fatalf("want %v, got %v", want, events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: want %q, got %q", i, want[i], events[i])
		}
	}
}

func TestTrackResetClearsEverything(t *testing.T) {
	tr := NewTrack("beam")
	_ = tr.Properties.Dissolve.Set(value.Float32(1))
	tr.RegisterGameObject("go1")
	tr.RegisterGameObjectCallback(func(GameObjectID, bool) {})

	tr.Reset()

	if _, ok := tr.Properties.Dissolve.Get(); ok {
		t.Errorf("Reset should clear property values")
	}
	if len(tr.GameObjects()) != 0 {
		t.Errorf("Reset should clear game objects")
	}
}
