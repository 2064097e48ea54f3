package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveRecording("tui", "", 1, time.Second, []byte{1})
	if err != nil {
		t.Fatalf("SaveRecording() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.LoadRecording(id); err != nil {
		t.Errorf("recording lost after reopen: %v", err)
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)
	frames := []byte{0x91, 0x82, 0xa1, 0x62, 0x00}

	id, err := store.SaveRecording("ssh", "alice", 42, 1500*time.Millisecond, frames)
	if err != nil {
		t.Fatalf("SaveRecording() failed: %v", err)
	}

	rec, err := store.LoadRecording(id)
	if err != nil {
		t.Fatalf("LoadRecording() failed: %v", err)
	}

	if rec.ID != id || rec.Frontend != "ssh" || rec.Player != "alice" || rec.FrameCount != 42 {
		t.Errorf("unexpected recording info: %+v", rec.RecordingInfo)
	}
	if rec.Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v, expected 1.5s", rec.Duration)
	}
	if !bytes.Equal(rec.Frames, frames) {
		t.Errorf("Frames = %x, expected %x", rec.Frames, frames)
	}
}

func TestStoreSaveEmpty(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRecording("tui", "", 0, 0, nil); err == nil {
		t.Error("saving an empty recording should fail")
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := openTestStore(t)
	_, err := store.LoadRecording(999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadRecording(999) = %v, expected ErrNotFound", err)
	}
}

func TestStoreListRecordings(t *testing.T) {
	store := openTestStore(t)

	var ids []int64
	for i := range 5 {
		id, err := store.SaveRecording("tui", "", i+1, time.Duration(i)*time.Second, []byte{byte(i)})
		if err != nil {
			t.Fatalf("SaveRecording() failed: %v", err)
		}
		ids = append(ids, id)
	}

	infos, err := store.ListRecordings(3)
	if err != nil {
		t.Fatalf("ListRecordings() failed: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("Expected 3 recordings with limit, got %d", len(infos))
	}

	// Newest first
	for i, info := range infos {
		if want := ids[len(ids)-1-i]; info.ID != want {
			t.Errorf("infos[%d].ID = %d, expected %d", i, info.ID, want)
		}
	}

	all, err := store.ListRecordings(0)
	if err != nil {
		t.Fatalf("ListRecordings(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 recordings with default limit, got %d", len(all))
	}
}

func TestStoreDeleteRecording(t *testing.T) {
	store := openTestStore(t)

	keep, _ := store.SaveRecording("tui", "", 1, time.Second, []byte{1})
	drop, _ := store.SaveRecording("window", "", 1, time.Second, []byte{2})

	if err := store.DeleteRecording(drop); err != nil {
		t.Fatalf("DeleteRecording() failed: %v", err)
	}
	if _, err := store.LoadRecording(drop); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted recording still loads: %v", err)
	}
	if _, err := store.LoadRecording(keep); err != nil {
		t.Errorf("other recording should not be affected: %v", err)
	}
	if err := store.DeleteRecording(drop); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, expected ErrNotFound", err)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.pong/recordings.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".pong", "recordings.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}
