package catalog

import (
	"testing"

	"github.com/pitstopd/pitstop/internal/domain"
)

func TestResolveDealershipByID(t *testing.T) {
	s := newTestStore(t)
	d, err := s.ResolveDealership("dealer_003")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if d.Name != "Queens Auto Pro" {
		t.Fatalf("unexpected dealership: %+v", d)
	}
}

func TestResolveDealershipByNameFragment(t *testing.T) {
	s := newTestStore(t)
	d, err := s.ResolveDealership("downtown")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if d.ID != "dealer_001" {
		t.Fatalf("unexpected dealership: %+v", d)
	}
}

func TestResolveDealershipFirstMatchWins(t *testing.T) {
	s := newTestStore(t)

	// "auto" matches several names; the earliest catalog entry wins.
	d, err := s.ResolveDealership("auto")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if d.ID != "dealer_001" {
		t.Fatalf("expected first match dealer_001, got %s", d.ID)
	}
}

func TestResolveDealershipNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.ResolveDealership("Springfield Motors"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNormalizeService(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"I need an oil change", "oil_change"},
		{"my wheels feel wobbly", "tire_rotation"},
		{"brake inspection", "brake_inspection"},
		{"annual checkup", "general_review"},
		{"state inspection please", "state_inspection"},
		{"A/C is blowing warm", "air_conditioning"},
		{"battery test", "battery_check"},
	}
	for _, tc := range cases {
		if got := NormalizeService(tc.input); got != tc.want {
			t.Fatalf("NormalizeService(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeServicePassthrough(t *testing.T) {
	// Unmatched input is passed through verbatim, never rejected.
	if got := NormalizeService("windshield swap"); got != "windshield swap" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
