package life

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func mustNew(t *testing.T, n int) *Life {
	t.Helper()
	l, err := New(n)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}
	return l
}

func expectAlive(t *testing.T, l *Life, step string, expects map[[2]int]bool) {
	t.Helper()
	n := l.Size().W
	cells := l.Cells()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			alive := cells[y*n+x] == 1
			shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", step, x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	for _, n := range []int{0, -1, -50} {
		if _, err := New(n); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("New(%d) err=%v, expected ErrInvalidDimension", n, err)
		}
		if _, err := NewRandom(n, 1, 0.5); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewRandom(%d) err=%v, expected ErrInvalidDimension", n, err)
		}
		if _, err := NewFromPattern(n, ParseCells("O")); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewFromPattern(%d) err=%v, expected ErrInvalidDimension", n, err)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := mustNew(t, 5)
	set := func(x, y int) { life.SetCell(x, y, true) }
	set(2, 1)
	set(2, 2)
	set(2, 3)

	life.Step()
	expectAlive(t, life, "after first step", map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	life.Step()
	expectAlive(t, life, "after second step", map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestBlockIsStable(t *testing.T) {
	life, err := NewFromPattern(6, ParseCells("OO", "OO").Translate(2, 2))
	if err != nil {
		t.Fatalf("NewFromPattern: %v", err)
	}
	initial := life.Snapshot()
	for i := 0; i < 20; i++ {
		life.Step()
		if !slices.Equal(initial, life.Cells()) {
			t.Fatalf("block changed at generation %d", life.Generation())
		}
	}
}

func TestDeadGridStaysDead(t *testing.T) {
	life := mustNew(t, 8)
	for i := 0; i < 10; i++ {
		life.Step()
		if pop := life.Population(); pop != 0 {
			t.Fatalf("generation %d has %d live cells, expected 0", life.Generation(), pop)
		}
	}
}

func TestCountNeighborsWrapsEdges(t *testing.T) {
	life := mustNew(t, 5)
	wrapped := [][2]int{{4, 4}, {0, 4}, {1, 4}, {4, 0}, {1, 0}, {4, 1}, {0, 1}, {1, 1}}
	for _, c := range wrapped {
		life.SetCell(c[0], c[1], true)
	}
	if got := life.CountNeighbors(0, 0); got != 8 {
		t.Fatalf("CountNeighbors(0,0)=%d, expected 8", got)
	}
	// The centre of the board only touches (1,1).
	if got := life.CountNeighbors(2, 2); got != 1 {
		t.Fatalf("CountNeighbors(2,2)=%d, expected 1", got)
	}
	// Of that ring, only (0,4) and (4,0) also touch the opposite corner.
	if got := life.CountNeighbors(4, 4); got != 2 {
		t.Fatalf("CountNeighbors(4,4)=%d, expected 2", got)
	}
}

func TestCountNeighborsIgnoresSelf(t *testing.T) {
	life := mustNew(t, 4)
	life.SetCell(1, 1, true)
	if got := life.CountNeighbors(1, 1); got != 0 {
		t.Fatalf("CountNeighbors on lone cell=%d, expected 0", got)
	}
}

func TestStepAppliesBirthAndSurvival(t *testing.T) {
	ring := [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}
	for _, alive := range []bool{false, true} {
		for k := 0; k <= 8; k++ {
			life := mustNew(t, 7)
			life.SetCell(2, 2, alive)
			for _, c := range ring[:k] {
				life.SetCell(c[0], c[1], true)
			}
			if got := life.CountNeighbors(2, 2); got != k {
				t.Fatalf("setup: neighbours=%d, expected %d", got, k)
			}
			life.Step()
			want := k == 3 || (alive && k == 2)
			if got := life.Alive(2, 2); got != want {
				t.Fatalf("alive=%v neighbours=%d: next alive=%v, expected %v", alive, k, got, want)
			}
		}
	}
}

func TestLoneCellOnSmallTorusDies(t *testing.T) {
	life := mustNew(t, 3)
	life.SetCell(1, 1, true)
	// Every other cell on a 3×3 torus neighbours (1,1) exactly once.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := 1
			if x == 1 && y == 1 {
				want = 0
			}
			if got := life.CountNeighbors(x, y); got != want {
				t.Fatalf("CountNeighbors(%d,%d)=%d, expected %d", x, y, got, want)
			}
		}
	}
	life.Step()
	expectAlive(t, life, "after step", map[[2]int]bool{})
}

// stepInPlace applies B3/S23 without a scratch buffer, so later cells see
// values already written for the next generation.
func stepInPlace(cells []uint8, n int) {
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			count := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					count += int(cells[((y+dy+n)%n)*n+(x+dx+n)%n])
				}
			}
			idx := y*n + x
			if Conway.Next(cells[idx] == 1, count) {
				cells[idx] = 1
			} else {
				cells[idx] = 0
			}
		}
	}
}

func TestStepReadsOnlyPreviousGeneration(t *testing.T) {
	life, err := NewFromPattern(5, ParseCells("OOO").Translate(1, 2))
	if err != nil {
		t.Fatalf("NewFromPattern: %v", err)
	}
	naive := life.Snapshot()
	stepInPlace(naive, 5)

	life.Step()
	expectAlive(t, life, "buffered step", map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
	if slices.Equal(naive, life.Cells()) {
		t.Fatal("in-place update matched buffered update; pattern does not exercise double buffering")
	}
}

func TestStepReusesBuffers(t *testing.T) {
	life := mustNew(t, 4)
	first := &life.Cells()[0]
	life.Step()
	second := &life.Cells()[0]
	life.Step()
	if &life.Cells()[0] != first {
		t.Fatal("expected buffers to alternate without reallocation")
	}
	if first == second {
		t.Fatal("expected step to swap to the scratch buffer")
	}
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	glider := ParseCells(".O.", "..O", "OOO")
	life, err := NewFromPattern(8, glider)
	if err != nil {
		t.Fatalf("NewFromPattern: %v", err)
	}
	start := life.Snapshot()

	for i := 0; i < 4; i++ {
		life.Step()
	}
	moved, err := NewFromPattern(8, glider.Translate(1, 1))
	if err != nil {
		t.Fatalf("NewFromPattern: %v", err)
	}
	if !slices.Equal(moved.Cells(), life.Cells()) {
		t.Fatal("glider did not move one cell diagonally after 4 generations")
	}

	for i := 4; i < 32; i++ {
		life.Step()
	}
	if !slices.Equal(start, life.Cells()) {
		t.Fatal("glider did not return to its start after crossing the torus")
	}
	if life.Generation() != 32 {
		t.Fatalf("generation=%d, expected 32", life.Generation())
	}
}

func TestCellStateBounds(t *testing.T) {
	life := mustNew(t, 4)
	life.SetCell(3, 0, true)
	s, err := life.CellState(3, 0)
	if err != nil || s != Alive {
		t.Fatalf("CellState(3,0)=%v,%v expected alive", s, err)
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if _, err := life.CellState(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("CellState(%d,%d) err=%v, expected ErrOutOfBounds", c[0], c[1], err)
		}
	}
	if !life.Alive(-1, 4) {
		t.Fatal("Alive(-1,4) should wrap to (3,0)")
	}
}

func TestEditing(t *testing.T) {
	life := mustNew(t, 4)
	if life.SetCell(4, 0, true) {
		t.Fatal("SetCell outside grid should report false")
	}
	if !life.ToggleCell(1, 2) || !life.Alive(1, 2) {
		t.Fatal("ToggleCell should revive a dead cell")
	}
	if !life.ToggleCell(1, 2) || life.Alive(1, 2) {
		t.Fatal("ToggleCell should kill a live cell")
	}
	if life.ToggleCell(-1, 0) {
		t.Fatal("ToggleCell outside grid should report false")
	}
	life.SetCell(0, 0, true)
	life.Step()
	life.Clear()
	if life.Population() != 0 || life.Generation() != 0 {
		t.Fatalf("Clear left population=%d generation=%d", life.Population(), life.Generation())
	}
}

func TestNewRandomDeterministic(t *testing.T) {
	a, err := NewRandom(16, 99, 0.3)
	if err != nil {
		t.Fatalf("NewRandom: %v", err)
	}
	b, err := NewRandom(16, 99, 0.3)
	if err != nil {
		t.Fatalf("NewRandom: %v", err)
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different grids")
	}
	c, err := NewRandom(16, 100, 0.3)
	if err != nil {
		t.Fatalf("NewRandom: %v", err)
	}
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds produced identical grids")
	}

	empty, _ := NewRandom(10, 1, 0)
	if empty.Population() != 0 {
		t.Fatalf("density 0 produced %d live cells", empty.Population())
	}
	full, _ := NewRandom(10, 1, 1)
	if full.Population() != 100 {
		t.Fatalf("density 1 produced %d live cells, expected 100", full.Population())
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	random, _ := NewRandom(12, 7, 0.5)
	initial := random.Snapshot()
	for i := 0; i < 5; i++ {
		random.Step()
	}
	random.Reset(7)
	if !slices.Equal(initial, random.Cells()) || random.Generation() != 0 {
		t.Fatal("Reset with the same seed should reproduce the initial grid")
	}

	patterned, _ := NewFromPattern(6, ParseCells("OOO").Translate(1, 2))
	start := patterned.Snapshot()
	patterned.Step()
	patterned.Reset(12345)
	if !slices.Equal(start, patterned.Cells()) {
		t.Fatal("Reset should restore the loaded pattern")
	}
}

func TestPatternCoordinatesWrap(t *testing.T) {
	life, err := NewFromPattern(4, Pattern{{X: 5, Y: -1}: Alive, {X: 0, Y: 0}: Dead})
	if err != nil {
		t.Fatalf("NewFromPattern: %v", err)
	}
	if !life.Alive(1, 3) || life.Population() != 1 {
		t.Fatalf("expected only (1,3) alive, population=%d", life.Population())
	}
}

func TestCustomRule(t *testing.T) {
	// B1/S: every dead cell touching a live one is born, live cells die.
	life := mustNew(t, 5)
	life.SetRule(Rule{Birth: 1 << 1})
	life.SetCell(2, 2, true)
	life.Step()
	if life.Alive(2, 2) || life.Population() != 8 {
		t.Fatalf("B1/S step gave population %d, expected 8 with centre dead", life.Population())
	}
}

func TestClearKeepsLoadedPattern(t *testing.T) {
	life, _ := NewFromPattern(8, ParseCells("OO", "OO").Centered(8))
	life.Clear()
	if life.Population() != 0 {
		t.Fatalf("Clear left population=%d", life.Population())
	}
	life.Reset(99)
	if life.Population() != 4 {
		t.Fatalf("Reset after Clear gave population=%d, expected the 4-cell block", life.Population())
	}

	life.Randomize(99)
	life.Reset(99)
	random, _ := NewRandom(8, 99, DefaultDensity)
	if !slices.Equal(life.Cells(), random.Cells()) {
		t.Fatal("Randomize should drop the pattern so Reset fills at random")
	}
}
