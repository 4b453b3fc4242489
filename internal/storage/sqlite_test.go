package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []BattleRecord{
		{OpponentID: "froggit", Outcome: "victory", DurationMs: 42000, DamageTaken: 6},
		{OpponentID: "froggit", Outcome: "defeat", DurationMs: 15000, DamageTaken: 20},
		{OpponentID: "bonehead", Outcome: "flee", DurationMs: 8000, DamageTaken: 4},
	}
	for _, rec := range saves {
		if _, err := store.SaveBattle(rec); err != nil {
			t.Fatalf("SaveBattle(%+v) failed: %v", rec, err)
		}
	}

	recent, err := store.RecentBattles(10)
	if err != nil {
		t.Fatalf("RecentBattles() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 battles, got %d", len(recent))
	}
	// Newest first
	if recent[0].OpponentID != "bonehead" || recent[2].OpponentID != "froggit" {
		t.Errorf("Battles not in reverse insertion order: %v", recent)
	}

	froggit, err := store.BattlesFor("froggit")
	if err != nil {
		t.Fatalf("BattlesFor() failed: %v", err)
	}
	if len(froggit) != 2 {
		t.Errorf("Expected 2 froggit battles, got %d", len(froggit))
	}
}

func TestStoreRecentBattlesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveBattle(BattleRecord{OpponentID: "froggit", Outcome: "victory"})
	}

	recent, err := store.RecentBattles(3)
	if err != nil {
		t.Fatalf("RecentBattles() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 battles with limit, got %d", len(recent))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// No battles yet
	stats, err := store.Stats("froggit")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Battles != 0 || stats.Victories != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}
	if stats.LeastDamage != -1 {
		t.Errorf("LeastDamage = %d for no victories, want -1", stats.LeastDamage)
	}

	store.SaveBattle(BattleRecord{OpponentID: "froggit", Outcome: "victory", DurationMs: 40000, DamageTaken: 8})
	store.SaveBattle(BattleRecord{OpponentID: "froggit", Outcome: "victory", DurationMs: 25000, DamageTaken: 3})
	store.SaveBattle(BattleRecord{OpponentID: "froggit", Outcome: "defeat", DurationMs: 5000, DamageTaken: 20})
	store.SaveBattle(BattleRecord{OpponentID: "bonehead", Outcome: "victory", DurationMs: 1000, DamageTaken: 0})

	stats, err = store.Stats("froggit")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Battles != 3 || stats.Victories != 2 {
		t.Errorf("Battles/Victories = %d/%d, want 3/2", stats.Battles, stats.Victories)
	}
	if stats.BestTimeMs != 25000 {
		t.Errorf("BestTimeMs = %d, want 25000 (fastest victory only)", stats.BestTimeMs)
	}
	if stats.LeastDamage != 3 {
		t.Errorf("LeastDamage = %d, want 3 (victories only)", stats.LeastDamage)
	}
	if stats.TotalDamage != 31 {
		t.Errorf("TotalDamage = %d, want 31", stats.TotalDamage)
	}
}

func TestStoreClearBattles(t *testing.T) {
	store := openTestStore(t)

	store.SaveBattle(BattleRecord{OpponentID: "froggit", Outcome: "victory"})
	store.SaveBattle(BattleRecord{OpponentID: "froggit", Outcome: "defeat"})
	store.SaveBattle(BattleRecord{OpponentID: "bonehead", Outcome: "victory"})

	if err := store.ClearBattles("froggit"); err != nil {
		t.Fatalf("ClearBattles() failed: %v", err)
	}

	froggit, _ := store.BattlesFor("froggit")
	if len(froggit) != 0 {
		t.Errorf("Expected 0 froggit battles after clear, got %d", len(froggit))
	}
	bonehead, _ := store.BattlesFor("bonehead")
	if len(bonehead) != 1 {
		t.Errorf("Bonehead battles should not be affected by clearing froggit")
	}
}

func TestStoreRecordResultAdapter(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordResult("webweaver", "victory", 33000, 7); err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}

	recent, err := store.RecentBattles(1)
	if err != nil {
		t.Fatalf("RecentBattles() failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("Expected 1 battle, got %d", len(recent))
	}
	rec := recent[0]
	if rec.OpponentID != "webweaver" || rec.Outcome != "victory" || rec.DurationMs != 33000 || rec.DamageTaken != 7 {
		t.Errorf("Recorded %+v", rec)
	}
}
