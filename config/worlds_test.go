package config

import "testing"

func TestWorldTableShape(t *testing.T) {
	ws := Worlds()
	if len(ws) != 8 {
		t.Fatalf("world count = %d, want 8", len(ws))
	}
	for _, w := range ws {
		if w.Number < 1 || w.Number > 8 {
			t.Errorf("world %q has number %d", w.Name, w.Number)
		}
		if w.Name == "" || w.Theme == "" {
			t.Errorf("world %d missing name or theme", w.Number)
		}
		if w.TimeLimit <= 0 {
			t.Errorf("world %d has time limit %d", w.Number, w.TimeLimit)
		}
		if len(w.Levels) == 0 {
			t.Errorf("world %d has no levels", w.Number)
		}
		for _, l := range w.Levels {
			if l.Archetype == "" {
				t.Errorf("world %d level %d has no archetype", w.Number, l.Number)
			}
		}
	}
}

func TestWorldLookupFallsBackToFirst(t *testing.T) {
	if got := World(99).Number; got != 1 {
		t.Fatalf("World(99) = world %d, want 1", got)
	}
	if got := World(3).Number; got != 3 {
		t.Fatalf("World(3) = world %d, want 3", got)
	}
}

func TestLevelArchetypeLookup(t *testing.T) {
	if got := LevelArchetype(1, 1); got == "" {
		t.Fatal("LevelArchetype(1, 1) is empty")
	}
	// Unknown level numbers fall back to the world's first entry.
	if got, want := LevelArchetype(1, 99), World(1).Levels[0].Archetype; got != want {
		t.Fatalf("fallback archetype = %q, want %q", got, want)
	}
}

func TestLevelExitLookup(t *testing.T) {
	if got := LevelExit(1, 1); got == "" {
		t.Fatal("LevelExit(1, 1) is empty")
	}
	// Unknown level numbers yield no override.
	if got := LevelExit(1, 99); got != "" {
		t.Fatalf("unknown level exit = %q, want empty", got)
	}

	// The table uses all four exit tags somewhere.
	seen := map[string]bool{}
	for _, w := range Worlds() {
		for _, l := range w.Levels {
			seen[l.Exit] = true
		}
	}
	for _, tag := range []string{"flag", "card", "pipe", "boss"} {
		if !seen[tag] {
			t.Errorf("exit tag %q never used in the world table", tag)
		}
	}
}

func TestParseWorldTableRejectsEmpty(t *testing.T) {
	if _, err := parseWorldTable([]byte("worlds: []")); err == nil {
		t.Fatal("empty table parsed without error")
	}
}

func TestFinalWorldEndsWithBossLevel(t *testing.T) {
	final := World(8)
	last := final.Levels[len(final.Levels)-1]
	if last.Archetype != "final-boss" {
		t.Fatalf("world 8 final level archetype = %q, want final-boss", last.Archetype)
	}
}
