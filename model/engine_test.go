package model

import "testing"

func engines() map[string]*Engine {
	return map[string]*Engine{
		"sequential": NewEngine(EngineOptions{}),
		"parallel":   NewEngine(EngineOptions{Parallel: true}),
		"bounded":    NewEngine(EngineOptions{Bounded: true}),
		"pooled":     NewEngine(EngineOptions{Parallel: true, MemoryPool: true}),
	}
}

func TestStepPatterns(t *testing.T) {
	tests := []struct {
		name  string
		start []string
		want  []string
	}{
		{
			name: "block is a still life",
			start: []string{
				"....",
				".##.",
				".##.",
				"....",
			},
			want: []string{
				"....",
				".##.",
				".##.",
				"....",
			},
		},
		{
			name: "blinker turns vertical",
			start: []string{
				".....",
				".....",
				".###.",
				".....",
				".....",
			},
			want: []string{
				".....",
				"..#..",
				"..#..",
				"..#..",
				".....",
			},
		},
		{
			name: "isolated cell dies",
			start: []string{
				"...",
				".#.",
				"...",
			},
			want: []string{
				"...",
				"...",
				"...",
			},
		},
		{
			name: "block in the corner is a still life",
			start: []string{
				"##...",
				"##...",
				".....",
				".....",
			},
			want: []string{
				"##...",
				"##...",
				".....",
				".....",
			},
		},
		{
			name: "no wrap-around at the edge",
			start: []string{
				".....",
				"#....",
				"#....",
				"#....",
				".....",
			},
			want: []string{
				".....",
				".....",
				"##...",
				".....",
				".....",
			},
		},
		{
			name: "opposite corners do not see each other",
			start: []string{
				"#...#",
				".....",
				".....",
				"#...#",
			},
			want: []string{
				".....",
				".....",
				".....",
				".....",
			},
		},
	}

	for name, e := range engines() {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				got := e.Step(fromRows(tt.start...))
				if want := fromRows(tt.want...); !got.Equal(want) {
					t.Fatalf("got %v, want %v", got.cells, want.cells)
				}
			})
		}
	}
}

func TestStepBlinkerPeriod(t *testing.T) {
	start := fromRows(
		".....",
		".....",
		".###.",
		".....",
		".....",
	)
	for name, e := range engines() {
		t.Run(name, func(t *testing.T) {
			once := e.Step(start)
			if once.Equal(start) {
				t.Fatal("blinker did not change after one step")
			}
			if !e.Step(once).Equal(start) {
				t.Fatal("blinker did not return after two steps")
			}
		})
	}
}

func TestStepBirthNeedsExactlyThree(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		alive bool
	}{
		{"two neighbours", []string{".....", ".#.#.", ".....", ".....", "....."}, false},
		{"three neighbours", []string{".....", ".###.", ".....", ".....", "....."}, true},
		{"four neighbours", []string{".....", ".###.", ".....", "..#..", "....."}, false},
	}
	e := NewEngine(EngineOptions{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Step(fromRows(tt.rows...)).Alive(2, 2); got != tt.alive {
				t.Fatalf("cell (2,2) alive = %v, want %v", got, tt.alive)
			}
		})
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	for name, e := range engines() {
		t.Run(name, func(t *testing.T) {
			g := fromRows(
				"#..#.",
				".##..",
				"..#.#",
				"#....",
			)
			before := g.Clone()
			e.Step(g)
			if !g.Equal(before) {
				t.Fatal("Step modified its input")
			}
		})
	}
}

func TestStrategiesAgree(t *testing.T) {
	g := NewEngine(EngineOptions{Seed: 7}).Randomize(40, 53, 0.35)
	want := NewEngine(EngineOptions{}).Step(g)
	for name, e := range engines() {
		t.Run(name, func(t *testing.T) {
			cur := g
			ref := g
			for range 10 {
				cur = e.Step(cur)
				ref = NewEngine(EngineOptions{}).Step(ref)
				if !cur.Equal(ref) {
					t.Fatal("generations diverged from the sequential scan")
				}
			}
			if !e.Step(g).Equal(want) {
				t.Fatal("first generation differs from the sequential scan")
			}
		})
	}
}

func TestStepEmptyGrid(t *testing.T) {
	for name, e := range engines() {
		t.Run(name, func(t *testing.T) {
			if n := e.Step(NewGrid(6, 6)).CountLivingCells(); n != 0 {
				t.Fatalf("empty grid produced %d living cells", n)
			}
		})
	}
}

func TestRandomizeDensity(t *testing.T) {
	e := NewEngine(EngineOptions{Seed: 42})

	if n := e.Randomize(20, 20, 0).CountLivingCells(); n != 0 {
		t.Fatalf("density 0 produced %d living cells", n)
	}
	if n := e.Randomize(20, 20, 1).CountLivingCells(); n != 400 {
		t.Fatalf("density 1 produced %d living cells, want 400", n)
	}
	if n := e.Randomize(20, 20, 3.5).CountLivingCells(); n != 400 {
		t.Fatalf("density above 1 produced %d living cells, want 400", n)
	}

	n := e.Randomize(100, 100, 0.3).CountLivingCells()
	if n < 2600 || n > 3400 {
		t.Fatalf("density 0.3 produced %d of 10000 living cells", n)
	}
}

func TestRandomizeIsReproducible(t *testing.T) {
	a := NewEngine(EngineOptions{Seed: 99}).Randomize(15, 15, 0.5)
	b := NewEngine(EngineOptions{Seed: 99}).Randomize(15, 15, 0.5)
	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}
}

func TestReleaseRecyclesGrids(t *testing.T) {
	e := NewEngine(EngineOptions{MemoryPool: true})
	g := fromRows("###", "###", "###")
	e.Release(g)

	next := e.Step(fromRows("...", "...", "..."))
	if n := next.CountLivingCells(); n != 0 {
		t.Fatalf("recycled grid leaked %d living cells", n)
	}

	// no pool: Release is a no-op
	NewEngine(EngineOptions{}).Release(g)
}
