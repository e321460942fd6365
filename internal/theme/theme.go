// Package theme persists the display preferences: dark/light mode and the
// rotating accent palette index.
package theme

import (
	"context"
	"fmt"
	"strconv"

	"expenseflow/internal/kv"
)

// Mode is the persisted theme mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Palette is one accent color set.
type Palette struct {
	Name      string
	Primary   string
	Secondary string
	Accent    string
}

// The five rotating palettes, same accents in both modes.
var palettes = []Palette{
	{Name: "green", Primary: "#10b981", Secondary: "#059669", Accent: "#34d399"},
	{Name: "blue", Primary: "#3b82f6", Secondary: "#2563eb", Accent: "#60a5fa"},
	{Name: "purple", Primary: "#8b5cf6", Secondary: "#7c3aed", Accent: "#a78bfa"},
	{Name: "pink", Primary: "#ec4899", Secondary: "#db2777", Accent: "#f472b6"},
	{Name: "amber", Primary: "#f59e0b", Secondary: "#d97706", Accent: "#fbbf24"},
}

// Store holds the current preferences and writes them through on change.
type Store struct {
	store      kv.Store
	mode       Mode
	colorIndex int
}

// NewStore loads persisted preferences, defaulting to light mode and the
// first palette.
func NewStore(ctx context.Context, store kv.Store) (*Store, error) {
	s := &Store{store: store, mode: Light}

	if raw, ok, err := store.Get(ctx, kv.KeyTheme); err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	} else if ok && Mode(raw) == Dark {
		s.mode = Dark
	}

	if raw, ok, err := store.Get(ctx, kv.KeyColorIndex); err != nil {
		return nil, fmt.Errorf("load color index: %w", err)
	} else if ok {
		if idx, err := strconv.Atoi(raw); err == nil && idx >= 0 {
			s.colorIndex = idx % len(palettes)
		}
	}

	return s, nil
}

// Mode returns the active mode.
func (s *Store) Mode() Mode { return s.mode }

// Colors returns the active palette.
func (s *Store) Colors() Palette {
	return palettes[s.colorIndex%len(palettes)]
}

// Toggle switches between dark and light and persists the choice.
func (s *Store) Toggle(ctx context.Context) (Mode, error) {
	next := Dark
	if s.mode == Dark {
		next = Light
	}
	if err := s.store.Set(ctx, kv.KeyTheme, string(next)); err != nil {
		return s.mode, fmt.Errorf("persist theme: %w", err)
	}
	s.mode = next
	return next, nil
}

// RotateColors advances to the next palette and persists the index.
func (s *Store) RotateColors(ctx context.Context) (Palette, error) {
	next := (s.colorIndex + 1) % len(palettes)
	if err := s.store.Set(ctx, kv.KeyColorIndex, strconv.Itoa(next)); err != nil {
		return s.Colors(), fmt.Errorf("persist color index: %w", err)
	}
	s.colorIndex = next
	return s.Colors(), nil
}
