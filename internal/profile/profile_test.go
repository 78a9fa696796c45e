package profile

import (
	"errors"
	"slices"
	"testing"
)

// memKV is an in-memory item store. failLoad/failSave make every call fail.
type memKV struct {
	items    map[string][]byte
	loads    int
	failLoad bool
	failSave bool
}

func newMemKV() *memKV {
	return &memKV{items: make(map[string][]byte)}
}

func (m *memKV) LoadItem(key string) ([]byte, error) {
	m.loads++
	if m.failLoad {
		return nil, errors.New("disk on fire")
	}
	return m.items[key], nil
}

func (m *memKV) SaveItem(key string, data []byte) error {
	if m.failSave {
		return errors.New("disk full")
	}
	m.items[key] = append([]byte(nil), data...)
	return nil
}

func TestHighScore(t *testing.T) {
	kv := newMemKV()
	s := New(kv, nil)

	score, err := s.HighScore()
	if err != nil || score != 0 {
		t.Fatalf("HighScore() = %d, %v; want 0, nil", score, err)
	}

	if err := s.SaveHighScore(42); err != nil {
		t.Fatalf("SaveHighScore() error = %v", err)
	}
	if got := string(kv.items[keyHighScore]); got != "42" {
		t.Errorf("stored %q, want plain text 42", got)
	}

	// Lower scores never overwrite the record.
	if err := s.SaveHighScore(7); err != nil {
		t.Fatalf("SaveHighScore() error = %v", err)
	}
	if score, _ := s.HighScore(); score != 42 {
		t.Errorf("HighScore() = %d, want 42", score)
	}

	if err := s.SaveHighScore(100); err != nil {
		t.Fatalf("SaveHighScore() error = %v", err)
	}
	if score, _ := s.HighScore(); score != 100 {
		t.Errorf("HighScore() = %d, want 100", score)
	}
}

func TestHighScoreMalformed(t *testing.T) {
	kv := newMemKV()
	kv.items[keyHighScore] = []byte("lots")
	s := New(kv, nil)

	if _, err := s.HighScore(); err == nil {
		t.Error("expected error for malformed high score")
	}

	if err := s.SaveHighScore(3); err != nil {
		t.Fatalf("SaveHighScore() error = %v", err)
	}
	if score, err := s.HighScore(); err != nil || score != 3 {
		t.Errorf("HighScore() = %d, %v; want 3, nil", score, err)
	}
}

func TestHighScoreTrimsWhitespace(t *testing.T) {
	kv := newMemKV()
	kv.items[keyHighScore] = []byte(" 15\n")
	s := New(kv, nil)

	if score, err := s.HighScore(); err != nil || score != 15 {
		t.Errorf("HighScore() = %d, %v; want 15, nil", score, err)
	}
}

func TestPlayerImage(t *testing.T) {
	s := New(newMemKV(), nil)

	if got := s.PlayerImage(); got != "" {
		t.Errorf("PlayerImage() = %q, want empty", got)
	}
	if err := s.SetPlayerImage("/tmp/me.png"); err != nil {
		t.Fatalf("SetPlayerImage() error = %v", err)
	}
	if got := s.PlayerImage(); got != "/tmp/me.png" {
		t.Errorf("PlayerImage() = %q, want /tmp/me.png", got)
	}
	if err := s.ClearPlayerImage(); err != nil {
		t.Fatalf("ClearPlayerImage() error = %v", err)
	}
	if got, err := s.LoadPlayerImage(); err != nil || got != "" {
		t.Errorf("LoadPlayerImage() = %q, %v; want empty", got, err)
	}
}

func TestImageRecords(t *testing.T) {
	s := New(newMemKV(), nil)

	for _, img := range []string{"a.png", "b.png", "c.png"} {
		if err := s.AddImage(img); err != nil {
			t.Fatalf("AddImage(%s) error = %v", img, err)
		}
	}

	// Index 1 among active images is b.png.
	if err := s.DeleteImage(1); err != nil {
		t.Fatalf("DeleteImage(1) error = %v", err)
	}
	active, _ := s.ActiveImages()
	if !slices.Equal(active, []string{"a.png", "c.png"}) {
		t.Errorf("ActiveImages() = %v, want [a.png c.png]", active)
	}

	// Index 1 now points at c.png, not the deleted record.
	if err := s.DeleteImage(1); err != nil {
		t.Fatalf("DeleteImage(1) error = %v", err)
	}
	active, _ = s.ActiveImages()
	if !slices.Equal(active, []string{"a.png"}) {
		t.Errorf("ActiveImages() = %v, want [a.png]", active)
	}

	recs, _ := s.ImageRecords()
	if len(recs) != 3 || !recs[1].Deleted || !recs[2].Deleted || recs[0].Deleted {
		t.Errorf("ImageRecords() = %+v, want soft-deleted b and c", recs)
	}

	if err := s.DeleteImage(5); !errors.Is(err, ErrImageIndex) {
		t.Errorf("DeleteImage(5) error = %v, want ErrImageIndex", err)
	}
	if err := s.DeleteImage(-1); !errors.Is(err, ErrImageIndex) {
		t.Errorf("DeleteImage(-1) error = %v, want ErrImageIndex", err)
	}

	if err := s.ClearImages(); err != nil {
		t.Fatalf("ClearImages() error = %v", err)
	}
	if got := s.ObstacleImages(); len(got) != 0 {
		t.Errorf("ObstacleImages() = %v, want none", got)
	}
	if recs, _ := s.ImageRecords(); len(recs) != 3 {
		t.Errorf("ClearImages() should keep records, got %d", len(recs))
	}
}

func TestObstacleImagesCached(t *testing.T) {
	kv := newMemKV()
	s := New(kv, nil)
	if err := s.AddImage("rock.png"); err != nil {
		t.Fatal(err)
	}

	s.ObstacleImages()
	loads := kv.loads
	for range 10 {
		s.ObstacleImages()
		s.PlayerImage()
	}
	if kv.loads != loads {
		t.Errorf("asset lookups hit the store %d more times", kv.loads-loads)
	}

	if err := s.AddImage("tree.png"); err != nil {
		t.Fatal(err)
	}
	if got := s.ObstacleImages(); !slices.Equal(got, []string{"rock.png", "tree.png"}) {
		t.Errorf("ObstacleImages() = %v after add", got)
	}
}

func TestStoreFailures(t *testing.T) {
	kv := newMemKV()
	s := New(kv, nil)

	kv.failSave = true
	if err := s.SaveHighScore(10); err == nil {
		t.Error("SaveHighScore() should surface save errors")
	}
	if err := s.AddImage("x.png"); err == nil {
		t.Error("AddImage() should surface save errors")
	}

	kv.failSave = false
	kv.failLoad = true
	if _, err := s.HighScore(); err == nil {
		t.Error("HighScore() should surface load errors")
	}
	// Asset lookups fall back to nothing instead of failing.
	if got := s.ObstacleImages(); got != nil {
		t.Errorf("ObstacleImages() = %v, want nil", got)
	}
	if got := s.PlayerImage(); got != "" {
		t.Errorf("PlayerImage() = %q, want empty", got)
	}
}

func TestMalformedImageRecords(t *testing.T) {
	kv := newMemKV()
	kv.items[keyObstacleImages] = []byte("{not json")
	s := New(kv, nil)

	if _, err := s.ImageRecords(); err == nil {
		t.Error("expected error for malformed records")
	}
	if got := s.ObstacleImages(); len(got) != 0 {
		t.Errorf("ObstacleImages() = %v, want none", got)
	}
}
