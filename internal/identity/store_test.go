package identity

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPlayerIDStableAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s1, err := Open(dir)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	id := s1.PlayerID()
	if id == "" {
		t.Fatal("expected a generated player id")
	}

	s2, err := Open(dir)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	if got := s2.PlayerID(); got != id {
		t.Fatalf("identity must survive reopen: %q != %q", got, id)
	}
}

func TestGameCodeSaveAndClear(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, ok := s.SavedGameCode(); ok {
		t.Fatal("fresh store must have no saved code")
	}

	if err := s.SaveGameCode("ABCD5"); err != nil {
		t.Fatalf("save: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	code, ok := reopened.SavedGameCode()
	if !ok || code != "ABCD5" {
		t.Fatalf("want saved code ABCD5, got %q (%v)", code, ok)
	}

	if err := reopened.ClearGameCode(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := reopened.SavedGameCode(); ok {
		t.Fatal("code must be gone after clear")
	}
}

func TestCorruptFileRegeneratesIdentity(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open over corrupt file: %v", err)
	}
	if s.PlayerID() == "" {
		t.Fatal("expected a regenerated player id")
	}
	if _, ok := s.SavedGameCode(); ok {
		t.Fatal("corrupt file must not yield a game code")
	}
}
