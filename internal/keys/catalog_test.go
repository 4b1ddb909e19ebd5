package keys

import "testing"

func TestCatalogUnique(t *testing.T) {
	seen := map[ID]bool{}
	for _, id := range Catalog() {
		if seen[id] {
			t.Fatalf("duplicate key in catalog: %s", id)
		}
		seen[id] = true
	}
	if len(seen) < 100 {
		t.Fatalf("expected a full-size layout, got %d keys", len(seen))
	}
}

func TestLabel(t *testing.T) {
	cases := map[ID]string{
		"KeyA":        "A",
		"Digit7":      "7",
		"F5":          "F5",
		"ControlLeft": "Ctrl",
		"ArrowUp":     "↑",
		"Space":       "",
		"KeyLang":     "Lang",
		"ж":           "ж",
	}
	for id, want := range cases {
		if got := Label(id); got != want {
			t.Fatalf("label for %s: expected %q, got %q", id, want, got)
		}
	}
}

func TestWidth(t *testing.T) {
	if Width("KeyA") != defaultWidth {
		t.Fatalf("expected default width for KeyA")
	}
	if Width("Space") <= Width("KeyA") {
		t.Fatalf("expected space bar wider than a letter")
	}
}
