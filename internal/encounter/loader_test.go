package encounter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinEncounters(t *testing.T) {
	encounters := Builtin()
	if len(encounters) < 3 {
		t.Fatalf("expected at least 3 built-in encounters, got %d", len(encounters))
	}

	ids := make(map[string]bool)
	for _, e := range encounters {
		if e.ID == "" {
			t.Error("built-in encounter with empty ID")
		}
		if ids[e.ID] {
			t.Errorf("duplicate built-in encounter ID %q", e.ID)
		}
		ids[e.ID] = true

		if e.HP <= 0 {
			t.Errorf("%s: HP = %d, want > 0", e.ID, e.HP)
		}
		if len(e.Attacks) == 0 {
			t.Errorf("%s: no attacks", e.ID)
		}
		for _, atk := range e.Attacks {
			if atk.DurationMs <= 0 {
				t.Errorf("%s/%s: duration = %d, want > 0", e.ID, atk.Name, atk.DurationMs)
			}
			if len(atk.Waves) == 0 {
				t.Errorf("%s/%s: no waves", e.ID, atk.Name)
			}
			for _, w := range atk.Waves {
				if w.Type == "" {
					t.Errorf("%s/%s: wave with empty type", e.ID, atk.Name)
				}
				if w.TimeMs < 0 || w.TimeMs >= atk.DurationMs {
					t.Errorf("%s/%s: wave at %dms outside attack duration %dms",
						e.ID, atk.Name, w.TimeMs, atk.DurationMs)
				}
			}
		}
	}

	if !ids["froggit"] || !ids["bonehead"] || !ids["webweaver"] {
		t.Errorf("missing expected built-ins, got %v", ids)
	}
}

func TestParseDefaults(t *testing.T) {
	// Minimal file: everything except id falls back to a default
	enc, err := Parse([]byte("id: dummy"), "inline")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if enc.Name != "dummy" {
		t.Errorf("Name should default to ID, got %q", enc.Name)
	}
	if enc.HP != 1 {
		t.Errorf("HP should default to 1, got %d", enc.HP)
	}
	if enc.MercyRequired() != 100 {
		t.Errorf("MercyRequired should default to 100, got %d", enc.MercyRequired())
	}
	if line := enc.DialogueForTurn(3); line != "" {
		t.Errorf("DialogueForTurn with no dialogue = %q, want empty", line)
	}
	if _, ok := enc.AttackForTurn(0); ok {
		t.Error("AttackForTurn with no attacks should report false")
	}
}

func TestParseMissingID(t *testing.T) {
	if _, err := Parse([]byte("name: nobody"), "inline"); err == nil {
		t.Error("Parse without id should fail")
	}
}

func TestAttackForTurnCycles(t *testing.T) {
	enc := Encounter{
		Attacks: []Attack{
			{Name: "a", DurationMs: 1000},
			{Name: "b", DurationMs: 1000},
		},
	}

	first, _ := enc.AttackForTurn(0)
	third, _ := enc.AttackForTurn(2)
	if first.Name != "a" || third.Name != "a" {
		t.Errorf("attacks should cycle: turn0=%s turn2=%s", first.Name, third.Name)
	}
	second, _ := enc.AttackForTurn(1)
	if second.Name != "b" {
		t.Errorf("turn1 = %s, want b", second.Name)
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()

	good := `
id: dummytest
name: Dummy
hp: 20
attacks:
  - name: poke
    duration: 3000
    waves:
      - { time: 0, type: projectiles, count: 3 }
`
	if err := os.WriteFile(filepath.Join(dir, "dummy.yaml"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	// Invalid files are skipped, not fatal
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("{{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(dir)
	encounters, err := l.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if len(encounters) != 1 {
		t.Fatalf("LoadAll() returned %d encounters, want 1", len(encounters))
	}
	if encounters[0].ID != "dummytest" {
		t.Errorf("loaded ID = %q", encounters[0].ID)
	}

	// LoadByID falls back to built-ins for IDs not in the directory
	enc, err := l.LoadByID("froggit")
	if err != nil {
		t.Fatalf("LoadByID(froggit) failed: %v", err)
	}
	if enc.Name != "Froggit" {
		t.Errorf("built-in fallback returned %q", enc.Name)
	}

	if _, err := l.LoadByID("no-such-opponent"); err == nil {
		t.Error("LoadByID for unknown encounter should fail")
	}
}
