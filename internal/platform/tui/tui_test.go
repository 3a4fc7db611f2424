package tui

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestFrameClock(t *testing.T) {
	var c frameClock
	t0 := time.Unix(100, 0)

	if dt := c.Next(t0); dt != 0 {
		t.Errorf("first frame dt = %v, expected 0", dt)
	}
	if dt := c.Next(t0.Add(16 * time.Millisecond)); dt != 16*time.Millisecond {
		t.Errorf("dt = %v, expected 16ms", dt)
	}
	if dt := c.Next(t0.Add(2 * time.Second)); dt != maxFrameDelta {
		t.Errorf("long stall dt = %v, expected the cap", dt)
	}
	if dt := c.Next(t0); dt != 0 {
		t.Errorf("clock going backwards dt = %v, expected 0", dt)
	}

	c.Reset()
	if dt := c.Next(t0.Add(time.Hour)); dt != 0 {
		t.Errorf("first frame after reset dt = %v", dt)
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameKeyMap(t *testing.T) {
	km := DefaultGameKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{" ", core.ActionTap},
		{"up", core.ActionTap},
		{"w", core.ActionTap},
		{"enter", core.ActionTap},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"b", core.ActionBack},
		{"esc", core.ActionBack},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
	}
	for _, tc := range tests {
		if got := km.Action(keyMsg(tc.key)); got != tc.want {
			t.Errorf("Action(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}

func TestMouseTap(t *testing.T) {
	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if !isTap(press) {
		t.Error("left press should tap")
	}
	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if isTap(release) {
		t.Error("release should not tap")
	}
	right := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if isTap(right) {
		t.Error("right button should not tap")
	}
}

// recordingAudio records the cues it is asked to play.
type recordingAudio struct {
	mu   sync.Mutex
	cues []audio.Cue
}

func (r *recordingAudio) Play(c audio.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, c)
}

func (r *recordingAudio) Close() error { return nil }

func (r *recordingAudio) count(c audio.Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	flappy.SetConfigPath("")
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

// step feeds one message and returns the updated game model.
func step(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func tick(m GameModel, at time.Time) TickMsg {
	return TickMsg{At: at, Loop: m.loop}
}

func TestGameModelFrameLoop(t *testing.T) {
	isolate(t)

	sound := &recordingAudio{}
	runs := NewRunLog(0)
	m := NewGameModel(flappy.New(), testConfig(), GameOptions{Audio: sound, Runs: runs, Player: "tester"})
	m.Init()

	t0 := time.Unix(1000, 0)
	m = step(t, m, tick(m, t0))
	m = step(t, m, keyMsg(" "))
	m = step(t, m, tick(m, t0.Add(16*time.Millisecond)))

	if !m.State().Started {
		t.Fatal("tap should start the game")
	}
	if sound.count(audio.CueMusic) != 1 {
		t.Errorf("music cues = %d, expected 1", sound.count(audio.CueMusic))
	}

	m = step(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = step(t, m, tick(m, t0.Add(32*time.Millisecond)))
	if sound.count(audio.CueJump) != 1 {
		t.Errorf("jump cues = %d, expected 1", sound.count(audio.CueJump))
	}

	// Free fall to the ground at the capped frame delta.
	at := t0.Add(32 * time.Millisecond)
	for i := 0; i < 100 && !m.State().GameOver; i++ {
		at = at.Add(50 * time.Millisecond)
		m = step(t, m, tick(m, at))
	}
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	top := runs.Top("", 0)
	if len(top) != 1 || top[0].GameID != flappy.IDTutorial || top[0].Player != "tester" || top[0].Cause != "ground" {
		t.Errorf("run log = %+v", top)
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	isolate(t)

	m := NewGameModel(flappy.New(), testConfig(), GameOptions{})
	m.Init()
	m = step(t, m, keyMsg(" "))

	next, cmd := m.Update(TickMsg{At: time.Now(), Loop: m.loop + 1000})
	if cmd != nil {
		t.Error("a tick from another loop should not schedule a frame")
	}
	if next.(GameModel).State().Started {
		t.Error("a tick from another loop should not step the game")
	}
}

func TestGameModelBack(t *testing.T) {
	isolate(t)

	standalone := NewGameModel(flappy.New(), testConfig(), GameOptions{})
	standalone.Init()
	standalone = step(t, standalone, keyMsg("esc"))
	if standalone.BackToMenu() {
		t.Error("a standalone game has no menu to return to")
	}

	embedded := NewGameModel(flappy.New(), testConfig(), GameOptions{Embedded: true})
	embedded.Init()
	embedded = step(t, embedded, keyMsg("b"))
	if !embedded.BackToMenu() {
		t.Error("back before the first tap should return to the menu")
	}
}

func TestGameModelQuit(t *testing.T) {
	isolate(t)

	m := NewGameModel(flappy.New(), testConfig(), GameOptions{})
	m.Init()
	next, cmd := m.Update(keyMsg("q"))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(GameModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestGameModelScreenshot(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	m := NewGameModel(flappy.New(), testConfig(), GameOptions{ScreenshotDir: dir})
	m.Init()
	m = step(t, m, keyMsg("ctrl+s"))

	files, err := filepath.Glob(filepath.Join(dir, "flappy_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v, %v", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Errorf("screenshot does not look like a frame:\n%s", data)
	}
	if !strings.Contains(m.View(), "saved") {
		t.Error("status line should confirm the screenshot")
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	isolate(t)

	m := NewGameModel(flappy.New(), testConfig(), GameOptions{})
	m.Init()
	t0 := time.Unix(0, 0)
	m = step(t, m, keyMsg(" "))
	m = step(t, m, tick(m, t0))

	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if !m.State().Started {
		t.Error("resize should not reset the run")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestRunLog(t *testing.T) {
	l := NewRunLog(3)
	base := time.Unix(0, 0)

	l.Add(RunEntry{GameID: "flappy", Score: 2, Ended: base})
	l.Add(RunEntry{GameID: "flappy_classic", Score: 9, Ended: base.Add(time.Second)})
	l.Add(RunEntry{GameID: "flappy", Score: 5, Ended: base.Add(2 * time.Second)})
	e := l.Add(RunEntry{GameID: "flappy", Score: 5, Ended: base.Add(3 * time.Second)})

	if l.Len() != 3 {
		t.Errorf("Len = %d, expected the limit of 3", l.Len())
	}
	if e.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("Add should assign an ID")
	}

	top := l.Top("flappy", 0)
	if len(top) != 2 {
		t.Fatalf("flappy runs = %d, expected 2 after eviction", len(top))
	}
	if top[0].Ended != base.Add(3*time.Second) {
		t.Error("ties should list the newest run first")
	}

	all := l.Top("", 1)
	if len(all) != 1 || all[0].Score != 9 {
		t.Errorf("Top(all, 1) = %+v", all)
	}
}

func TestRunLogConcurrent(t *testing.T) {
	l := NewRunLog(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				l.Add(RunEntry{GameID: "flappy", Score: i*100 + j})
				l.Top("flappy", 5)
			}
		}(i)
	}
	wg.Wait()
	if l.Len() != 160 {
		t.Errorf("Len = %d, expected 160", l.Len())
	}
}

func TestRunLogModelFilters(t *testing.T) {
	runs := NewRunLog(0)
	runs.Add(RunEntry{GameID: flappy.IDTutorial, Score: 3, Cause: "ground"})
	runs.Add(RunEntry{GameID: flappy.IDClassic, Score: 4, Cause: "top pipe"})

	m := NewRunLogModel(runs, nil, 100, 30)
	if len(m.Entries()) != 2 {
		t.Fatalf("all games shows %d runs", len(m.Entries()))
	}

	next, _ := m.Update(keyMsg("tab"))
	m = next.(RunLogModel)
	if len(m.Entries()) != 1 {
		t.Errorf("single game filter shows %d runs", len(m.Entries()))
	}
	if !strings.Contains(m.View(), "BEST RUNS") {
		t.Error("view should have a title")
	}

	next, _ = m.Update(keyMsg("esc"))
	if !next.(RunLogModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestMenuModel(t *testing.T) {
	m := NewMenuModel(testConfig(), nil)
	if len(m.items) < 2 {
		t.Fatalf("menu lists %d games", len(m.items))
	}
	view := m.View()
	if !strings.Contains(view, "Flappy Bird") {
		t.Errorf("menu view missing games:\n%s", view)
	}

	next, _ := m.Update(keyMsg("down"))
	m = next.(MenuModel)
	next, _ = m.Update(keyMsg("enter"))
	m = next.(MenuModel)
	if m.Selected() == nil || m.Selected().GameID != m.items[1].GameID {
		t.Errorf("selected = %+v", m.Selected())
	}
}

func TestSessionModelFlow(t *testing.T) {
	isolate(t)

	runs := NewRunLog(0)
	s := NewSessionModel(testConfig(), SessionOptions{Runs: runs, Player: "tester"})

	update := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	// Menu -> run log -> menu.
	update(keyMsg("tab"))
	if s.view != viewRunLog {
		t.Fatalf("tab should open the run log, view = %v", s.view)
	}
	update(keyMsg("b"))
	if s.view != viewMenu {
		t.Fatalf("back should return to the menu, view = %v", s.view)
	}

	// Menu -> game -> menu.
	if cmd := update(keyMsg("enter")); cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}
	if s.view != viewGame || s.gameModel == nil {
		t.Fatalf("enter should start a game, view = %v", s.view)
	}
	update(keyMsg("esc"))
	if s.view != viewMenu {
		t.Errorf("esc before the first tap should return to the menu, view = %v", s.view)
	}

	if cmd := update(keyMsg("q")); cmd == nil || !s.quitting {
		t.Error("q should quit the session")
	}
}
