// Package ui draws the world onto a tcell screen.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrInvalidSize is returned for a screen with no cells.
var ErrInvalidSize = errors.New("invalid screen size")

// Screen wraps tcell.Screen with the calls the renderer needs.
type Screen struct {
	screen tcell.Screen
}

// NewScreen initializes s and wraps it.
func NewScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	return &Screen{screen: s}, nil
}

// NewHeadlessScreen creates an in-memory screen of the given size backed by
// a tcell simulation screen. Nothing is written to a terminal.
func NewHeadlessScreen(width, height int) (*Screen, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("headless screen %dx%d: %w", width, height, ErrInvalidSize)
	}
	sim := tcell.NewSimulationScreen("")
	s, err := NewScreen(sim)
	if err != nil {
		return nil, err
	}
	sim.SetSize(width, height)
	s.Clear()
	return s, nil
}

// Close finalizes the screen.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Content returns the rune and style buffered at (x, y).
func (s *Screen) Content(x, y int) (rune, tcell.Style) {
	r, _, style, _ := s.screen.GetContent(x, y)
	if r != 0 {
		return r, style
	}
	return ' ', style
}

// Size returns the screen dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Text returns the buffered runes, one row per line, with trailing blanks
// trimmed from each row.
func (s *Screen) Text() string {
	width, height := s.Size()
	rows := make([]string, height)
	line := make([]rune, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			line[x], _ = s.Content(x, y)
		}
		rows[y] = strings.TrimRight(string(line), " ")
	}
	return strings.Join(rows, "\n")
}
