package snapshot

import (
	"testing"
	"time"

	"github.com/bsq-ports/tracks-rs/internal/baseprovider"
	"github.com/bsq-ports/tracks-rs/internal/value"
)

func TestSaveAndLoadRoundTripsInMemoryFallback(t *testing.T) {
	store := New("", "", 0)
	defer store.Close()

	ctx := baseprovider.New()
	if err := ctx.Set(baseprovider.ChEnergy, value.Float32(0.42)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := store.Save("session-1", ctx, 12.5, time.Hour); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored := baseprovider.New()
	songTime, ok, err := store.Load("session-1", restored)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatalf("expected a saved snapshot to be found")
	}
	if songTime != 12.5 {
		t.Errorf("expected song time 12.5, got %v", songTime)
	}

	v, err := restored.Get(baseprovider.ChEnergy)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.At(0) != 0.42 {
		t.Errorf("expected restored energy 0.42, got %v", v.At(0))
	}
}

func TestLoadReportsNotFoundForUnknownSession(t *testing.T) {
	store := New("", "", 0)
	defer store.Close()

	_, ok, err := store.Load("nope", baseprovider.New())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Errorf("expected no snapshot for an unsaved session")
	}
}
