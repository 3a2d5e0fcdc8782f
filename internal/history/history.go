// Package history persists calculated mix designs in a JSON file so they
// can be listed, compared and exported across runs.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"gomix/internal/errors"
	"gomix/internal/mix"
)

// DateLayout is the timestamp format stored with each entry.
const DateLayout = "2006-01-02 15:04"

// Entry is one stored mix design. Masses are kg/m³ and water is litres/m³.
type Entry struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	Grade       string  `json:"grade"`
	Strength    float64 `json:"strength"`
	WCRatio     float64 `json:"wc_ratio"`
	Cement      float64 `json:"cement"`
	Water       float64 `json:"water"`
	FineAgg     float64 `json:"fine_agg"`
	CoarseAgg   float64 `json:"coarse_agg"`
	Admixture   float64 `json:"admixture"`
	FlyAsh      float64 `json:"fly_ash,omitempty"`
	CementSaved float64 `json:"cement_saved,omitempty"`
}

// FromResult flattens a mix design into a history entry. The water-cement
// ratio recorded is the governing table ratio; for blended designs the
// revised ratio is recoverable from water and total cementitious.
func FromResult(r *mix.Result) Entry {
	e := Entry{
		Grade:     r.Grade,
		Strength:  r.TargetStrength,
		WCRatio:   r.WaterCementRatio,
		Cement:    r.CementContent,
		Water:     r.WaterContent,
		FineAgg:   r.Composition.FineMass,
		CoarseAgg: r.Composition.CoarseMass,
		Admixture: r.Composition.AdmixtureMass,
	}
	if r.FlyAsh != nil {
		e.FlyAsh = r.FlyAsh.FlyAshContent
		e.CementSaved = r.FlyAsh.CementSaved
	}
	return e
}

// Store reads and writes the history file. Entries keep their insertion
// order; IDs are assigned sequentially starting at 1.
type Store struct {
	path string
}

// NewStore returns a store backed by the JSON file at path. The file is
// created on first append.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns all stored entries. A missing file is an empty history.
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Storage("failed to read mix history", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Storage("mix history file is corrupt", err)
	}
	return entries, nil
}

// Append stamps the entry with the next ID and the current time, persists
// it and returns the stored form.
func (s *Store) Append(e Entry) (Entry, error) {
	entries, err := s.Load()
	if err != nil {
		return Entry{}, err
	}

	e.ID = len(entries) + 1
	if e.Date == "" {
		e.Date = time.Now().Format(DateLayout)
	}
	entries = append(entries, e)

	if err := s.save(entries); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Get returns the entry with the given ID.
func (s *Store) Get(id int) (Entry, error) {
	entries, err := s.Load()
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, errors.Newf(errors.TypeStorage, "mix design %d not found in history", id)
}

// Clear removes the history file.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Storage("failed to clear mix history", err)
	}
	return nil
}

// Compare fetches two stored designs for a side-by-side comparison.
func (s *Store) Compare(firstID, secondID int) (*Comparison, error) {
	first, err := s.Get(firstID)
	if err != nil {
		return nil, err
	}
	second, err := s.Get(secondID)
	if err != nil {
		return nil, err
	}
	return &Comparison{First: first, Second: second}, nil
}

func (s *Store) save(entries []Entry) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Storage("failed to create history directory", err)
		}
	}

	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return errors.Storage("failed to encode mix history", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Storage("failed to write mix history", err)
	}
	return nil
}

// Comparison pairs two stored designs.
type Comparison struct {
	First  Entry
	Second Entry
}

// Delta holds the second design's values minus the first's.
type Delta struct {
	Strength  float64
	WCRatio   float64
	Cement    float64
	Water     float64
	FineAgg   float64
	CoarseAgg float64
}

// Delta returns the per-quantity differences, second minus first.
func (c *Comparison) Delta() Delta {
	return Delta{
		Strength:  c.Second.Strength - c.First.Strength,
		WCRatio:   c.Second.WCRatio - c.First.WCRatio,
		Cement:    c.Second.Cement - c.First.Cement,
		Water:     c.Second.Water - c.First.Water,
		FineAgg:   c.Second.FineAgg - c.First.FineAgg,
		CoarseAgg: c.Second.CoarseAgg - c.First.CoarseAgg,
	}
}
