package baseprovider

import (
	"testing"

	"github.com/bsq-ports/tracks-rs/internal/value"
)

func TestNewDefaultsEveryChannel(t *testing.T) {
	ctx := New()
	v, err := ctx.Get(ChEnergy)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.At(0) != 0 {
		t.Errorf("expected baseEnergy to default to 0, got %v", v.At(0))
	}

	rot, err := ctx.Get(ChHeadRotation)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !rot.Equal(value.IdentityQuaternion()) {
		t.Errorf("expected baseHeadRotation to default to identity, got %v", rot.Slice())
	}
}

func TestGetUnknownChannelIsAnError(t *testing.T) {
	if _, err := New().Get("not-a-real-channel"); err == nil {
		t.Fatal("expected an error for an unknown channel")
	}
}

func TestSetRejectsKindMismatch(t *testing.T) {
	ctx := New()
	if err := ctx.Set(ChEnergy, value.NewVec3(1, 2, 3)); err == nil {
		t.Fatal("expected a kind-mismatch error setting a float channel to a vec3")
	}
}

func TestSetAndGetRoundTrips(t *testing.T) {
	ctx := New()
	if err := ctx.Set(ChEnergy, value.Float32(0.75)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := ctx.Get(ChEnergy)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.At(0) != 0.75 {
		t.Errorf("expected 0.75, got %v", v.At(0))
	}
}

func TestResolveValueProviderWrapsQuaternionChannels(t *testing.T) {
	spec, err := ResolveValueProvider("baseHeadRotation.something")
	if err != nil {
		t.Fatalf("ResolveValueProvider: %v", err)
	}
	if spec.ChannelName != ChHeadRotation {
		t.Errorf("expected channel name %q, got %q", ChHeadRotation, spec.ChannelName)
	}
	if !spec.WrapQuaternion {
		t.Error("expected a quaternion channel to require wrapping")
	}
}

func TestResolveValueProviderPlainChannelNeedsNoWrapping(t *testing.T) {
	spec, err := ResolveValueProvider(ChEnergy)
	if err != nil {
		t.Fatalf("ResolveValueProvider: %v", err)
	}
	if spec.WrapQuaternion {
		t.Error("a float channel must never be reported as needing quaternion wrapping")
	}
}

func TestResolveValueProviderUnknownChannel(t *testing.T) {
	if _, err := ResolveValueProvider("nope"); err == nil {
		t.Fatal("expected an error for an unknown base channel")
	}
}

func TestKnownChannelsListsEveryDeclaredChannel(t *testing.T) {
	names := KnownChannels()
	if len(names) != len(channelKinds) {
		t.Fatalf("expected %d channels, got %d", len(channelKinds), len(names))
	}
}
