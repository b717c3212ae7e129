package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestScoreboardShowsVariantScores(t *testing.T) {
	store := openStore(t)
	for _, rec := range []storage.ScoreRecord{
		{Variant: "large", Score: 4, Length: 7, EndReason: "wall-collision"},
		{Variant: "large", Score: 9, Length: 12, EndReason: "self-collision"},
		{Variant: "classic", Score: 1, Length: 4, EndReason: "quit"},
	} {
		if _, err := store.SaveScore(rec); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "large", 100, 30)
	if m.Variant() != "large" {
		t.Fatalf("Variant() = %q, expected large", m.Variant())
	}

	rows := m.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "9" || rows[0][2] != "12" || rows[0][3] != "self" {
		t.Errorf("first row = %v, expected score 9, length 12, ended by self", rows[0])
	}
	if line := m.statsLine(); line == "" {
		t.Error("expected a stats line for a played variant")
	}
}

func TestScoreboardCyclesVariants(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 20)
	if m.Variant() != "classic" {
		t.Fatalf("Variant() = %q, expected classic first", m.Variant())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Variant() != "large" {
		t.Errorf("Variant() after tab = %q, expected large", m.Variant())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.Variant() != "tiny" {
		t.Errorf("Variant() after wrapping back = %q, expected tiny", m.Variant())
	}
	if len(m.Rows()) != 0 {
		t.Error("expected no rows without a store")
	}
}

func TestScoreboardRecentMode(t *testing.T) {
	store := openStore(t)
	for _, rec := range []storage.ScoreRecord{
		{Variant: "tiny", Score: 2, Length: 5, EndReason: "wall-collision"},
		{Variant: "classic", Score: 3, Length: 6, EndReason: "self-collision"},
	} {
		if _, err := store.SaveScore(rec); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "tiny", 100, 30)
	next, _ := m.Update(runeKey('r'))
	m = next.(ScoreboardModel)

	rows := m.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 recent rows, got %d", len(rows))
	}
	if rows[0][0] != "classic" || rows[1][0] != "tiny" {
		t.Errorf("recent rows = %v, expected newest first with board names", rows)
	}

	next, _ = m.Update(runeKey('r'))
	if rows := next.(ScoreboardModel).Rows(); len(rows) != 1 || rows[0][0] != "#1" {
		t.Errorf("rows after toggling back = %v, expected the tiny top list", rows)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "classic", 80, 24)

	back, _ := m.Update(runeKey('b'))
	if !back.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}

	quit, _ := m.Update(runeKey('q'))
	if !quit.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestEndReasonLabel(t *testing.T) {
	tests := map[string]string{
		"wall-collision": "wall",
		"self-collision": "self",
		"board-full":     "board full",
		"quit":           "quit",
		"":               "-",
	}
	for in, expected := range tests {
		if got := endReasonLabel(in); got != expected {
			t.Errorf("endReasonLabel(%q) = %q, expected %q", in, got, expected)
		}
	}
}
