package tuning

import (
	"testing"
	"time"

	"github.com/frudas24/swipedeck/internal/anim"
)

// TestDefaultValidates verifies the stock constants pass their own validation.
func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults failed validation: %v", err)
	}
}

// TestValidate_ThresholdBounds verifies the threshold fraction range.
func TestValidate_ThresholdBounds(t *testing.T) {
	bad := Default()
	bad.ThresholdPct = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for zero threshold")
	}
	bad.ThresholdPct = 1.2
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for threshold above 1")
	}
}

// TestValidate_RestScaleBounds verifies the rest scale must stay below full size.
func TestValidate_RestScaleBounds(t *testing.T) {
	bad := Default()
	bad.RestScale = 1
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for rest scale 1")
	}
}

// TestValidate_UnknownEasing verifies tween descriptors need a known curve.
func TestValidate_UnknownEasing(t *testing.T) {
	bad := Default()
	bad.Swipe.Easing = "bounce"
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for unknown easing")
	}
}

// TestValidate_SpringNeedsConstants verifies spring descriptors need real physics values.
func TestValidate_SpringNeedsConstants(t *testing.T) {
	bad := Default()
	bad.Settle = AnimSpec{Mode: "spring", Frequency: 0, Damping: 1}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for zero frequency")
	}
	bad.Settle = AnimSpec{Mode: "spring", Frequency: 8, Damping: 0}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for zero damping")
	}
}

// TestValidate_UnknownMode verifies descriptors must pick a supported mode.
func TestValidate_UnknownMode(t *testing.T) {
	bad := Default()
	bad.Swipe.Mode = "teleport"
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

// TestAnimSpecConversion verifies the descriptor maps onto an animation spec.
func TestAnimSpecConversion(t *testing.T) {
	s := AnimSpec{Mode: "tween", DurationMs: 250, Easing: anim.EaseLinear}.Spec()
	if s.Mode != anim.ModeTween {
		t.Fatalf("expected tween mode, got %v", s.Mode)
	}
	if s.Duration != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", s.Duration)
	}
	if s.Easing != anim.EaseLinear {
		t.Fatalf("expected linear easing, got %q", s.Easing)
	}
}
