package entities

import "testing"

// TestReduceDispatchesActions verifies every action kind reaches its transition.
func TestReduceDispatchesActions(t *testing.T) {
	c := testCatalog()
	s := NewSession(c)

	s, changed := Reduce(c, s, Action{Kind: ActionSelectOption, Option: 0})
	if !changed || s.SelectedOption != 0 {
		t.Fatalf("expected selection, got %+v", s)
	}
	s, changed = Reduce(c, s, Action{Kind: ActionSubmit})
	if !changed || s.Score != 1 {
		t.Fatalf("expected submit, got %+v", s)
	}
	s, changed = Reduce(c, s, Action{Kind: ActionAdvance})
	if !changed || s.QuestionIndex != 1 {
		t.Fatalf("expected advance, got %+v", s)
	}
	s, changed = Reduce(c, s, Action{Kind: ActionRestart})
	if !changed || s.QuestionIndex != 0 || s.Score != 0 {
		t.Fatalf("expected restart, got %+v", s)
	}
	s, changed = Reduce(c, s, Action{Kind: ActionChangeTopic, Topic: "Основы Python"})
	if !changed || s.Topic != "Основы Python" {
		t.Fatalf("expected topic change, got %+v", s)
	}
}

// TestReduceDropsStaleActions verifies actions pinned to another question are ignored.
func TestReduceDropsStaleActions(t *testing.T) {
	c := testCatalog()
	s := NewSession(c)
	s, _ = s.SelectOption(c, 0)
	s, _ = s.Submit(c)
	s, _ = s.Advance(c)

	stale := []Action{
		{Kind: ActionSelectOption, Option: 2, At: &Position{Topic: s.Topic, Question: 0}},
		{Kind: ActionSubmit, At: &Position{Topic: "Основы Python", Question: 1}},
	}
	for _, a := range stale {
		next, changed := Reduce(c, s, a)
		if changed || next != s {
			t.Fatalf("expected stale %s to be dropped, got %+v", a.Kind, next)
		}
	}

	next, changed := Reduce(c, s, Action{Kind: ActionSelectOption, Option: 2, At: &Position{Topic: s.Topic, Question: 1}})
	if !changed || next.SelectedOption != 2 {
		t.Fatalf("expected current action to apply, got %+v", next)
	}
}

// TestReduceUnknownKind verifies unknown actions are no-ops.
func TestReduceUnknownKind(t *testing.T) {
	c := testCatalog()
	s := NewSession(c)
	if _, changed := Reduce(c, s, Action{Kind: ActionKind(42)}); changed {
		t.Fatalf("expected unknown action to be ignored")
	}
	if ActionKind(42).String() != "unknown" {
		t.Fatalf("expected unknown name")
	}
}
