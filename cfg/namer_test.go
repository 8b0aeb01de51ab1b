package cfg

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNamerAvoidsCollisions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cfg")
	defer teardown()
	//
	g, err := Parse("S0 -> S1 a\nS1 -> b")
	if err != nil {
		t.Fatal(err)
	}
	n := NewNamer(g)
	if fresh := n.Numbered("S", 0); fresh.Name != "S2" {
		t.Errorf("expected fresh start symbol S2, got %s", fresh.Name)
	}
}

func TestNamerFresh(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cfg")
	defer teardown()
	//
	n := NewNamer(nil)
	first := n.Fresh("T_a")
	second := n.Fresh("T_a")
	if first.Name != "T_a" || second.Name != "T_a2" {
		t.Errorf("expected T_a and T_a2, got %s and %s", first.Name, second.Name)
	}
	if first.IsTerminal() {
		t.Errorf("fresh symbols must be nonterminals")
	}
}

func TestNamerNumberedSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cfg")
	defer teardown()
	//
	g, err := Parse("S -> X2 a\nX2 -> b")
	if err != nil {
		t.Fatal(err)
	}
	n := NewNamer(g)
	names := []string{
		n.Numbered("X", 1).Name,
		n.Numbered("X", 1).Name,
		n.Numbered("X", 1).Name,
	}
	expected := []string{"X1", "X3", "X4"} // X2 is taken by the grammar
	for i, name := range names {
		if name != expected[i] {
			t.Errorf("expected fresh name #%d to be %s, got %s", i, expected[i], name)
		}
	}
}
