package gui

import "testing"

func TestFormMachine_SaveFlow(t *testing.T) {
	var m formMachine

	if m.State() != StateEditing {
		t.Fatalf("initial state = %s, want editing", m.State())
	}

	if err := m.To(StateValidating); err != nil {
		t.Fatalf("editing -> validating: %v", err)
	}
	if err := m.To(StateEditing); err != nil {
		t.Fatalf("validating -> editing (failed validation): %v", err)
	}
	if err := m.To(StateValidating); err != nil {
		t.Fatalf("editing -> validating: %v", err)
	}
	if err := m.To(StateSaved); err != nil {
		t.Fatalf("validating -> saved: %v", err)
	}
	if !m.State().Terminal() {
		t.Fatal("saved must be terminal")
	}

	// No transitions leave a terminal state.
	for _, next := range []FormState{StateEditing, StateValidating, StateRejected} {
		if err := m.To(next); err == nil {
			t.Fatalf("saved -> %s should be rejected", next)
		}
	}
}

func TestFormMachine_CancelFlow(t *testing.T) {
	var m formMachine

	if err := m.To(StateRejected); err != nil {
		t.Fatalf("editing -> rejected: %v", err)
	}
	if !m.State().Terminal() {
		t.Fatal("rejected must be terminal")
	}
	if err := m.To(StateValidating); err == nil {
		t.Fatal("rejected -> validating should be rejected")
	}
}

func TestFormMachine_IllegalEdges(t *testing.T) {
	var m formMachine

	// Editing cannot jump straight to Saved.
	if err := m.To(StateSaved); err == nil {
		t.Fatal("editing -> saved should be rejected")
	}

	if err := m.To(StateValidating); err != nil {
		t.Fatalf("editing -> validating: %v", err)
	}
	// Validating cannot be cancelled mid-flight; it resolves first.
	if err := m.To(StateRejected); err == nil {
		t.Fatal("validating -> rejected should be rejected")
	}
}

func TestFormStateString(t *testing.T) {
	cases := map[FormState]string{
		StateEditing:    "editing",
		StateValidating: "validating",
		StateSaved:      "saved",
		StateRejected:   "rejected",
	}
	for state, want := range cases {
		if state.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(state), state.String(), want)
		}
	}
}
