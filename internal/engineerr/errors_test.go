package engineerr

import (
	"errors"
	"testing"
)

func TestNewProducesFatalSeverity(t *testing.T) {
	err := New(CodeUnknownChannel, "boom")
	if err.Severity != SeverityFatal {
		t.Errorf("expected fatal severity, got %v", err.Severity)
	}
	if err.Timestamp.IsZero() {
		t.Error("expected a non-zero timestamp")
	}
}

func TestWrapPreservesCauseAndUnwraps(t *testing.T) {
	cause := errors.New("underlying failure")
	wrapped := Wrap(CodeArity, "construction failed", cause)

	if !errors.Is(wrapped, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
	if wrapped.Error() == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestWithMetadataChainsAndStores(t *testing.T) {
	err := New(CodeKindMismatch, "bad kind").WithMetadata("target", "baseEnergy")
	if err.Metadata["target"] != "baseEnergy" {
		t.Errorf("expected metadata to be stored, got %v", err.Metadata)
	}
}

func TestUnknownChannelCarriesChannelMetadata(t *testing.T) {
	err := UnknownChannel("baseEnergy")
	if err.Code != CodeUnknownChannel {
		t.Errorf("expected CodeUnknownChannel, got %v", err.Code)
	}
	if err.Metadata["channel"] != "baseEnergy" {
		t.Errorf("expected channel metadata, got %v", err.Metadata)
	}
}

func TestDuplicateNameMessageNamesTheDuplicate(t *testing.T) {
	err := DuplicateName("track", "A")
	if err.Metadata["name"] != "A" {
		t.Errorf("expected name metadata, got %v", err.Metadata)
	}
}

func TestErrorAggregatorCollectsAndReportsCount(t *testing.T) {
	var agg ErrorAggregator
	if agg.HasErrors() {
		t.Fatal("a fresh aggregator must report no errors")
	}

	agg.Add(UnknownChannel("a"))
	agg.Add(UnknownChannel("b"))

	if !agg.HasErrors() {
		t.Fatal("expected HasErrors to be true after adding errors")
	}
	if len(agg.Errors()) != 2 {
		t.Fatalf("expected 2 collected errors, got %d", len(agg.Errors()))
	}
	if agg.Error() == "" {
		t.Error("expected a non-empty aggregate message")
	}
}

func TestErrorAggregatorSingleErrorMessagePassesThrough(t *testing.T) {
	var agg ErrorAggregator
	only := UnknownChannel("a")
	agg.Add(only)
	if agg.Error() != only.Error() {
		t.Errorf("expected a single-error aggregator to pass the message through unchanged, got %q", agg.Error())
	}
}
