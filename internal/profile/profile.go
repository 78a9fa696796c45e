// Package profile keeps the local player profile: the high score, the
// custom player image and the obstacle image records. Data lives in the
// per-user gdata store, so it survives between runs of the binary.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// ErrImageIndex is returned when an obstacle image index is out of range.
var ErrImageIndex = errors.New("profile: image index out of range")

// Item keys in the gdata store.
const (
	keyHighScore      = "highscore"
	keyPlayerImage    = "playerimage"
	keyObstacleImages = "obstacleimages"
)

// KV is the item store a profile is kept in. *gdata.Manager implements it.
type KV interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// ImageRecord is one stored obstacle image. Deleted records stay in the
// list so positions of older records never shift on disk.
type ImageRecord struct {
	Image   string `json:"img"`
	Deleted bool   `json:"deleted"`
}

// Store reads and writes the profile. It is safe for concurrent use, which
// the SSH server relies on.
type Store struct {
	mu  sync.Mutex
	kv  KV
	log *log.Logger

	// Cached asset lookups for the simulation; any write drops them.
	cached bool
	images []string
	player string
}

// Open opens the gdata store for appName.
func Open(appName string, logger *log.Logger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("profile: failed to open %s data: %w", appName, err)
	}
	return New(m, logger), nil
}

// New wraps an existing item store.
func New(kv KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{kv: kv, log: logger}
}

// HighScore returns the stored high score, or 0 if none was saved yet.
func (s *Store) HighScore() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore()
}

func (s *Store) highScore() (int, error) {
	data, err := s.kv.LoadItem(keyHighScore)
	if err != nil {
		return 0, fmt.Errorf("profile: failed to load high score: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("profile: malformed high score %q: %w", text, err)
	}
	return max(score, 0), nil
}

// SaveHighScore stores score if it beats the stored value. The stored high
// score never decreases, even when several sessions finish at once.
func (s *Store) SaveHighScore(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.highScore()
	if err != nil {
		// A malformed value is overwritten rather than blocking new records.
		s.log.Warn("Replacing unreadable high score", "error", err)
		current = 0
	}
	if score <= current {
		return nil
	}
	if err := s.kv.SaveItem(keyHighScore, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("profile: failed to save high score: %w", err)
	}
	return nil
}

// LoadPlayerImage returns the custom player image, or "" if none is set.
func (s *Store) LoadPlayerImage() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.LoadItem(keyPlayerImage)
	if err != nil {
		return "", fmt.Errorf("profile: failed to load player image: %w", err)
	}
	return string(data), nil
}

// SetPlayerImage stores the custom player image reference.
func (s *Store) SetPlayerImage(ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = false
	if err := s.kv.SaveItem(keyPlayerImage, []byte(ref)); err != nil {
		return fmt.Errorf("profile: failed to save player image: %w", err)
	}
	return nil
}

// ClearPlayerImage removes the custom player image.
func (s *Store) ClearPlayerImage() error {
	return s.SetPlayerImage("")
}

// ImageRecords returns every obstacle image record, deleted ones included.
func (s *Store) ImageRecords() ([]ImageRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records()
}

func (s *Store) records() ([]ImageRecord, error) {
	data, err := s.kv.LoadItem(keyObstacleImages)
	if err != nil {
		return nil, fmt.Errorf("profile: failed to load obstacle images: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var recs []ImageRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("profile: malformed obstacle images: %w", err)
	}
	return recs, nil
}

func (s *Store) saveRecords(recs []ImageRecord) error {
	s.cached = false
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("profile: failed to encode obstacle images: %w", err)
	}
	if err := s.kv.SaveItem(keyObstacleImages, data); err != nil {
		return fmt.Errorf("profile: failed to save obstacle images: %w", err)
	}
	return nil
}

// ActiveImages returns the obstacle images that are not deleted, in the
// order they were added.
func (s *Store) ActiveImages() ([]string, error) {
	recs, err := s.ImageRecords()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, r := range recs {
		if !r.Deleted {
			out = append(out, r.Image)
		}
	}
	return out, nil
}

// AddImage appends an obstacle image.
func (s *Store) AddImage(ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.records()
	if err != nil {
		return err
	}
	return s.saveRecords(append(recs, ImageRecord{Image: ref}))
}

// DeleteImage marks the active image at index i as deleted. The index
// counts active images only, matching ActiveImages.
func (s *Store) DeleteImage(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.records()
	if err != nil {
		return err
	}

	active := 0
	for j := range recs {
		if recs[j].Deleted {
			continue
		}
		if active == i {
			recs[j].Deleted = true
			return s.saveRecords(recs)
		}
		active++
	}
	return fmt.Errorf("%w: %d (have %d)", ErrImageIndex, i, active)
}

// ClearImages marks every obstacle image as deleted.
func (s *Store) ClearImages() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.records()
	if err != nil {
		return err
	}
	for j := range recs {
		recs[j].Deleted = true
	}
	return s.saveRecords(recs)
}

// ObstacleImages returns the active obstacle images for spawning. Errors
// are logged and treated as an empty set.
func (s *Store) ObstacleImages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadAssets()
	return s.images
}

// PlayerImage returns the custom player image for rendering, or "".
func (s *Store) PlayerImage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadAssets()
	return s.player
}

func (s *Store) loadAssets() {
	if s.cached {
		return
	}
	s.cached = true
	s.images, s.player = nil, ""

	recs, err := s.records()
	if err != nil {
		s.log.Warn("Obstacle images unavailable", "error", err)
	}
	for _, r := range recs {
		if !r.Deleted {
			s.images = append(s.images, r.Image)
		}
	}

	data, err := s.kv.LoadItem(keyPlayerImage)
	if err != nil {
		s.log.Warn("Player image unavailable", "error", err)
		return
	}
	s.player = string(data)
}
