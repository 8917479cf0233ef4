package store

import (
	"testing"
	"time"
)

func TestWriteReadRoundTrip(t *testing.T) {
	st := NewSnapshotStore(t.TempDir())

	if err := st.Write("league/abc/draft.json", []byte(`{"picks":[]}`), true); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !st.Exists("league/abc/draft.json") {
		t.Fatal("snapshot should exist after write")
	}
	b, err := st.Read("league/abc/draft.json")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(b) == 0 {
		t.Fatal("read returned empty body")
	}
}

func TestWriteKeepsCSVVerbatim(t *testing.T) {
	st := NewSnapshotStore(t.TempDir())
	csv := "Name,Club\nSalah,LIV\n"

	if err := st.Write("players/players.csv", []byte(csv), true); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := st.Read("players/players.csv")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != csv {
		t.Errorf("CSV body changed on write: %q", string(b))
	}
}

func TestFresh(t *testing.T) {
	st := NewSnapshotStore(t.TempDir())

	if st.Fresh("missing.json", time.Hour) {
		t.Error("missing snapshot reported fresh")
	}

	if err := st.Write("game.json", []byte(`{}`), false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !st.Fresh("game.json", time.Hour) {
		t.Error("just-written snapshot should be fresh within an hour")
	}
	if !st.Fresh("game.json", 0) {
		t.Error("ttl<=0 should treat any existing snapshot as fresh")
	}
	if st.Fresh("game.json", time.Nanosecond) {
		t.Error("nanosecond ttl should have expired")
	}
}
