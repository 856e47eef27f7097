package t2048

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func newTestGame(t *testing.T, opts Options, seed int64) (*Game, *[]core.Event) {
	t.Helper()
	g := NewGame(opts, rand.New(rand.NewSource(seed)))
	var events []core.Event
	g.Subscribe(core.ListenerFunc(func(ev core.Event) {
		events = append(events, ev)
	}))
	return g, &events
}

// setGrid replaces the board and restarts history from it.
func setGrid(t *testing.T, g *Game, rows [][]int) {
	t.Helper()
	g.grid = mustGrid(t, rows)
	g.sessionMax = g.grid.MaxTile()
	g.history.Clear()
	g.pushHistory()
}

func kinds(events []core.Event) []core.EventKind {
	out := make([]core.EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestNewGame(t *testing.T) {
	g, events := newTestGame(t, DefaultOptions(), 1)
	st := g.State()

	if got := 16 - st.Grid.EmptyCount(); got != 2 {
		t.Errorf("new game has %d tiles, want 2", got)
	}
	if st.Score != 0 || st.Moves != 0 {
		t.Errorf("new game score/moves = %d/%d, want 0/0", st.Score, st.Moves)
	}
	if st.Status != StatusInProgress {
		t.Errorf("status = %s, want in_progress", st.Status)
	}
	if st.Session == "" {
		t.Error("session id should be set")
	}
	if st.CanUndo {
		t.Error("fresh game should not allow undo")
	}
	if len(*events) != 0 {
		t.Errorf("new game emitted %v", kinds(*events))
	}
}

func TestDeterministicSpawn(t *testing.T) {
	g1 := NewGame(DefaultOptions(), rand.New(rand.NewSource(12345)))
	g2 := NewGame(DefaultOptions(), rand.New(rand.NewSource(12345)))

	if !g1.Grid().Equal(g2.Grid()) {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v", g1.Grid(), g2.Grid())
	}
	if g1.Session() == g2.Session() {
		t.Error("sessions should be unique")
	}
}

func TestResetFallsBackToConfiguredSize(t *testing.T) {
	opts := DefaultOptions()
	opts.Size = 5
	g, _ := newTestGame(t, opts, 3)
	first := g.Session()

	g.Reset(TimeAttack(time.Minute), 1)

	st := g.State()
	if st.Grid.Size() != 5 {
		t.Errorf("size = %d, want 5", st.Grid.Size())
	}
	if st.Remaining != time.Minute {
		t.Errorf("remaining = %v, want 1m", st.Remaining)
	}
	if st.Session == first {
		t.Error("reset should start a new session")
	}
}

func TestMoveMergesAndScores(t *testing.T) {
	g, _ := newTestGame(t, DefaultOptions(), 4)
	setGrid(t, g, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if !g.Move(DirLeft) {
		t.Fatal("move should be accepted")
	}

	st := g.State()
	if st.Grid.Get(0, 0) != 4 {
		t.Errorf("merged tile = %d, want 4", st.Grid.Get(0, 0))
	}
	if st.Score != 4 || st.Moves != 1 {
		t.Errorf("score/moves = %d/%d, want 4/1", st.Score, st.Moves)
	}
	if got := 16 - st.Grid.EmptyCount(); got != 2 {
		t.Errorf("tiles after move = %d, want merged tile plus one spawn", got)
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	g, _ := newTestGame(t, DefaultOptions(), 5)
	setGrid(t, g, [][]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := g.Grid()

	if g.Move(DirLeft) {
		t.Error("left on left-aligned tiles should be rejected")
	}
	if !g.Grid().Equal(before) || g.State().Moves != 0 {
		t.Error("rejected move changed state")
	}
	if g.history.Len() != 1 {
		t.Errorf("history len = %d, want 1", g.history.Len())
	}
}

func TestInvalidDirectionIgnored(t *testing.T) {
	g, _ := newTestGame(t, DefaultOptions(), 6)
	if g.Move(Direction(-1)) {
		t.Error("invalid direction should be rejected")
	}
}

func TestUndo(t *testing.T) {
	g, _ := newTestGame(t, DefaultOptions(), 7)
	setGrid(t, g, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := g.Grid()

	if !g.Move(DirLeft) {
		t.Fatal("move should be accepted")
	}
	if !g.State().CanUndo {
		t.Fatal("undo should be available after a move")
	}
	if !g.Undo() {
		t.Fatal("undo should succeed")
	}

	st := g.State()
	if !st.Grid.Equal(before) || st.Score != 0 || st.Moves != 0 {
		t.Errorf("undo did not restore state: score %d moves %d\n%v", st.Score, st.Moves, st.Grid)
	}
	if g.Undo() {
		t.Error("second undo should fail with a single snapshot")
	}
}

func TestUndoBoundedByCapacity(t *testing.T) {
	g, _ := newTestGame(t, DefaultOptions(), 8)

	moved := 0
	for _, dir := range []Direction{DirLeft, DirUp, DirRight, DirDown, DirLeft, DirUp} {
		if g.Move(dir) {
			moved++
		}
	}
	if moved < DefaultHistoryCapacity {
		t.Skipf("only %d moves accepted", moved)
	}

	undone := 0
	for g.Undo() {
		undone++
	}
	if undone != DefaultHistoryCapacity-1 {
		t.Errorf("undone %d times, want %d", undone, DefaultHistoryCapacity-1)
	}
}

func TestUndoDeterministicUnderSeed(t *testing.T) {
	a, _ := newTestGame(t, DefaultOptions(), 99)
	b, _ := newTestGame(t, DefaultOptions(), 99)

	var grids []Grid
	for _, dir := range []Direction{DirLeft, DirUp, DirRight, DirDown, DirLeft, DirUp} {
		okA, okB := a.Move(dir), b.Move(dir)
		if okA != okB {
			t.Fatalf("identical seeds diverged on %s", dir)
		}
		if okA {
			grids = append(grids, a.Grid())
		}
	}

	if !a.Grid().Equal(b.Grid()) {
		t.Fatal("identical seeds diverged")
	}
	if len(grids) < 2 {
		t.Skip("not enough accepted moves")
	}
	if !a.Undo() {
		t.Fatal("undo failed")
	}
	if want := grids[len(grids)-2]; !a.Grid().Equal(want) {
		t.Errorf("undo restored\n%v\nwant\n%v", a.Grid(), want)
	}
}

func TestSoftWinFiresOnce(t *testing.T) {
	opts := DefaultOptions()
	g, events := newTestGame(t, opts, 9)
	setGrid(t, g, [][]int{
		{1024, 1024, 0, 0},
		{512, 512, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Move(DirLeft)
	if !g.State().WinReached {
		t.Fatal("win tile should be flagged")
	}
	if g.Status() != StatusInProgress {
		t.Errorf("soft win should not end the game, status %s", g.Status())
	}

	g.grid.Set(3, 0, 1024)
	g.grid.Set(3, 1, 1024)
	g.Move(DirRight)

	count := 0
	for _, ev := range *events {
		if ev.Kind == core.EventWinTileReached {
			count++
			if ev.Value != DefaultWinTile {
				t.Errorf("win event value = %d", ev.Value)
			}
		}
	}
	if count != 1 {
		t.Errorf("WinTileReached fired %d times, want 1", count)
	}
}

func TestTargetWin(t *testing.T) {
	opts := DefaultOptions()
	opts.Mode = TargetScore(8)
	opts.WinTile = 8
	g, events := newTestGame(t, opts, 10)
	setGrid(t, g, [][]int{
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Move(DirLeft)

	if g.Status() != StatusWon {
		t.Fatalf("status = %s, want won", g.Status())
	}
	got := kinds(*events)
	want := []core.EventKind{core.EventTileReached, core.EventWinTileReached, core.EventGameEnded}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
	end := (*events)[2]
	if !end.Won || end.Score != 8 || end.GameID != IDTarget || end.Session != g.Session() {
		t.Errorf("unexpected end event %+v", end)
	}

	if g.Move(DirRight) {
		t.Error("moves after a win should be rejected")
	}
	if g.Undo() {
		t.Error("undo after a win should be rejected")
	}
}

func TestHintAfterTargetWin(t *testing.T) {
	opts := DefaultOptions()
	opts.Mode = TargetScore(8)
	g, _ := newTestGame(t, opts, 10)
	setGrid(t, g, [][]int{
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	g.Move(DirLeft)
	if g.Status() != StatusWon {
		t.Fatalf("status = %s, want won", g.Status())
	}

	want, wantOK := Suggest(g.Grid())
	dir, ok := g.Hint()
	if !ok || !wantOK || dir != want {
		t.Errorf("Hint() = %s, %v; want %s, true", dir, ok, want)
	}
	if !g.State().HasHint {
		t.Error("hint on a won board should be kept for display")
	}
}

func TestLoss(t *testing.T) {
	opts := DefaultOptions()
	opts.Size = 2
	src := &scriptSource{floats: []float64{0.5, 0.5, 0.05}}
	g := NewGame(opts, src)
	var events []core.Event
	g.Subscribe(core.ListenerFunc(func(ev core.Event) { events = append(events, ev) }))
	setGrid(t, g, [][]int{
		{4, 2},
		{0, 8},
	})

	if !g.Move(DirLeft) {
		t.Fatal("move should be accepted")
	}

	if g.Status() != StatusLost {
		t.Fatalf("status = %s, want lost\n%v", g.Status(), g.Grid())
	}
	last := events[len(events)-1]
	if last.Kind != core.EventGameEnded || last.Won || last.Status != string(StatusLost) {
		t.Errorf("unexpected end event %+v", last)
	}
	if last.BoardSize != 2 || last.MaxTile != 8 {
		t.Errorf("end event board/max = %d/%d", last.BoardSize, last.MaxTile)
	}
}

func TestTimeExpires(t *testing.T) {
	opts := DefaultOptions()
	opts.Mode = TimeAttack(3 * time.Second)
	g, events := newTestGame(t, opts, 11)

	g.Tick()
	g.Tick()
	if g.Status() != StatusInProgress || g.State().Remaining != time.Second {
		t.Fatalf("after 2 ticks: %s, %v left", g.Status(), g.State().Remaining)
	}

	g.Tick()
	if g.Status() != StatusTimeExpired {
		t.Fatalf("status = %s, want time_expired", g.Status())
	}
	if len(*events) != 1 || (*events)[0].Kind != core.EventGameEnded || (*events)[0].Won {
		t.Fatalf("events = %+v", *events)
	}
	if (*events)[0].Elapsed != 3*time.Second {
		t.Errorf("elapsed = %v, want 3s", (*events)[0].Elapsed)
	}

	g.Tick()
	if len(*events) != 1 {
		t.Error("tick on a finished game should not emit")
	}
	if g.Move(DirLeft) || g.Move(DirRight) {
		t.Error("moves after time expiry should be rejected")
	}
}

func TestClassicTickCountsElapsed(t *testing.T) {
	g, events := newTestGame(t, DefaultOptions(), 12)
	for range 200 {
		g.Tick()
	}
	if g.State().Elapsed != 200*time.Second {
		t.Errorf("elapsed = %v", g.State().Elapsed)
	}
	if g.Status() != StatusInProgress || len(*events) != 0 {
		t.Error("classic mode should never time out")
	}
}

func TestTileReachedOnNewMax(t *testing.T) {
	g, events := newTestGame(t, DefaultOptions(), 13)
	setGrid(t, g, [][]int{
		{8, 8, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Move(DirLeft)

	if len(*events) == 0 || (*events)[0].Kind != core.EventTileReached || (*events)[0].Value != 16 {
		t.Errorf("events = %+v, want tile_reached 16", *events)
	}
}

func TestHintClearedByMove(t *testing.T) {
	g, _ := newTestGame(t, DefaultOptions(), 14)
	if _, ok := g.Hint(); !ok {
		t.Fatal("fresh board should have a hint")
	}
	if !g.State().HasHint {
		t.Fatal("hint should be kept for display")
	}
	dir := g.State().Hint
	if !g.Move(dir) {
		t.Fatal("hinted move should be accepted")
	}
	if g.State().HasHint {
		t.Error("hint should clear after a move")
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for _, size := range []int{2, 3, 4, 6} {
		opts := DefaultOptions()
		opts.Size = size
		g, _ := newTestGame(t, opts, int64(size))

		for range 500 {
			g.Move(Directions()[rng.Intn(4)])
			st := g.State()
			if err := st.Grid.Validate(); err != nil {
				t.Fatalf("size %d: %v", size, err)
			}
			if st.Score < 0 {
				t.Fatalf("size %d: negative score", size)
			}
			if st.Status.Terminal() {
				break
			}
		}
	}
}
