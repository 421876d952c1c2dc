package core

import (
	"errors"
	"testing"
)

type stubSim struct{ name string }

func (s stubSim) Name() string   { return s.name }
func (s stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (s stubSim) Reset(int64)    {}
func (s stubSim) Step()          {}
func (s stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegisterAndLookup(t *testing.T) {
	Register("stub-lookup", func(map[string]string) Sim { return stubSim{name: "stub-lookup"} })
	defer delete(sims, "stub-lookup")

	f, err := Lookup("stub-lookup")
	if err != nil {
		t.Fatalf("Lookup returned %v", err)
	}
	if got := f(nil).Name(); got != "stub-lookup" {
		t.Fatalf("factory built %q", got)
	}

	if _, err := Lookup("missing"); !errors.Is(err, ErrUnknownSim) {
		t.Fatalf("expected ErrUnknownSim, got %v", err)
	}
}

func TestRegisterIgnoresInvalidEntries(t *testing.T) {
	before := len(sims)
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	if len(sims) != before {
		t.Fatal("invalid registrations must be ignored")
	}
}
