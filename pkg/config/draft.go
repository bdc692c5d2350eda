package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pseudofractal/Shiryoku/pkg/compiler"
)

// LoadDraft reads the persisted draft, or an empty one if none exists.
func LoadDraft() (compiler.Draft, error) {
	dir, err := Dir()
	if err != nil {
		return compiler.Draft{}, err
	}

	data, err := os.ReadFile(filepath.Join(dir, "draft.json"))
	if errors.Is(err, fs.ErrNotExist) {
		return compiler.Draft{}, nil
	}
	if err != nil {
		return compiler.Draft{}, fmt.Errorf("reading draft: %w", err)
	}

	var draft compiler.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return compiler.Draft{}, fmt.Errorf("parsing draft: %w", err)
	}
	return draft, nil
}

// SaveDraft persists the draft so an interrupted session can resume.
func SaveDraft(draft compiler.Draft) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "draft.json"), data, 0o600); err != nil {
		return fmt.Errorf("writing draft: %w", err)
	}
	return nil
}

// ClearDraft removes the persisted draft after a successful send.
func ClearDraft() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(dir, "draft.json"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing draft: %w", err)
	}
	return nil
}
