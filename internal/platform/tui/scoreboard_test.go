package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anillaksu/neonsurvivor/internal/storage"
)

type fakeRuns struct {
	runs  []storage.RunRecord
	err   error
	asked []string
}

func (f *fakeRuns) TopRuns(frontend string, limit int) ([]storage.RunRecord, error) {
	f.asked = append(f.asked, frontend)
	if f.err != nil {
		return nil, f.err
	}
	var out []storage.RunRecord
	for _, r := range f.runs {
		if frontend == "" || r.Frontend == frontend {
			out = append(out, r)
		}
	}
	return out[:min(limit, len(out))], nil
}

func (f *fakeRuns) Stats() (storage.Stats, error) {
	st := storage.Stats{Runs: len(f.runs)}
	for _, r := range f.runs {
		st.HighScore = max(st.HighScore, r.Score)
	}
	return st, f.err
}

func sampleRuns() *fakeRuns {
	played := time.Date(2025, 3, 9, 20, 15, 0, 0, time.UTC)
	return &fakeRuns{runs: []storage.RunRecord{
		{Frontend: storage.FrontendWindow, Score: 420, Level: 5, ExtraDirections: 1, Duration: 155 * time.Second, CreatedAt: played},
		{Frontend: storage.FrontendTerminal, Score: 130, Level: 2, SpeedUpgrades: 1, Duration: 61 * time.Second, CreatedAt: played},
	}}
}

func TestScoreboardFilters(t *testing.T) {
	src := sampleRuns()
	m := NewScoreboardModel(src, 100, 30)
	if len(m.runs) != 2 {
		t.Fatalf("all filter loaded %d runs, want 2", len(m.runs))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.runs) != 1 || m.runs[0].Frontend != storage.FrontendTerminal {
		t.Errorf("terminal filter loaded %+v", m.runs)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.filter != 2 || len(m.runs) != 1 || m.runs[0].Score != 420 {
		t.Errorf("filter=%d runs=%+v, want window runs", m.filter, m.runs)
	}
	want := []string{"", storage.FrontendTerminal, "", storage.FrontendWindow}
	if strings.Join(src.asked, ",") != strings.Join(want, ",") {
		t.Errorf("queried %q, want %q", src.asked, want)
	}
}

func TestScoreboardViewStates(t *testing.T) {
	m := NewScoreboardModel(&fakeRuns{}, 100, 30)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	m = NewScoreboardModel(&fakeRuns{err: errors.New("locked")}, 100, 30)
	if !strings.Contains(m.View(), "locked") {
		t.Error("load error should be shown")
	}

	m = NewScoreboardModel(sampleRuns(), 100, 30)
	view := m.View()
	for _, want := range []string{"HIGH SCORES", "420", "S0 B0 X1", "2:35"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || next.(ScoreboardModel).View() != "" {
		t.Error("q should quit the scoreboard")
	}
}

func TestPrintScores(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintScores(&buf, sampleRuns(), 10); err != nil {
		t.Fatalf("PrintScores() failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Rank", "#1", "420", "#2", "130", "1:01", "2 runs"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "420") > strings.Index(out, "130") {
		t.Errorf("runs out of order:\n%s", out)
	}

	buf.Reset()
	if err := PrintScores(&buf, &fakeRuns{}, 10); err != nil {
		t.Fatalf("PrintScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs") {
		t.Errorf("empty output = %q", buf.String())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61*time.Second + 600*time.Millisecond, "1:02"},
		{10 * time.Minute, "10:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
