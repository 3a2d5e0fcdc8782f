package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"gomix/internal/errors"
	"gomix/internal/mix"
)

// Design is the saved form of a calculation: the parameters that produced
// it, the full result, and when it was saved.
type Design struct {
	Inputs  mix.Inputs  `json:"inputs"`
	Results *mix.Result `json:"results"`
	Date    string      `json:"date"`
}

// SaveDesign writes a design file that LoadDesign can restore.
func SaveDesign(path string, in mix.Inputs, r *mix.Result) error {
	d := Design{
		Inputs:  in,
		Results: r,
		Date:    time.Now().Format("2006-01-02 15:04:05"),
	}

	data, err := json.MarshalIndent(d, "", "    ")
	if err != nil {
		return errors.Storage("failed to encode mix design", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Storage("failed to create design directory", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Storage("failed to write design file", err)
	}
	return nil
}

// LoadDesign reads a design file written by SaveDesign.
func LoadDesign(path string) (*Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Storage("failed to read design file", err)
	}

	var d Design
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Storage("design file is not valid JSON", err)
	}
	if d.Results == nil {
		return nil, errors.New(errors.TypeStorage, "design file has no results")
	}
	return &d, nil
}
