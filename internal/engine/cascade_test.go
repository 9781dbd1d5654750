package engine

import (
	"testing"

	"slotforge_backend/internal/engine/rng"
)

// countingEvaluator считает вызовы и перестаёт выигрывать после n побед
type countingEvaluator struct {
	evaluations int
	winsLeft    int
}

func (e *countingEvaluator) Evaluate(grid Grid, cfg *GameConfig, bet int) []WinningCombination {
	e.evaluations++
	if e.winsLeft == 0 {
		return nil
	}
	e.winsLeft--
	return []WinningCombination{{
		Symbol:    grid[0][0],
		Count:     1,
		Payout:    10,
		Positions: []Position{{Row: 0, Col: 0}},
		Kind:      KindCluster,
	}}
}

func cascadeTestConfig() *GameConfig {
	return &GameConfig{
		Rows:        3,
		Cols:        3,
		Symbols:     []SymbolDef{{ID: "A", Weight: 1}, {ID: "B", Weight: 1}},
		Mechanism:   MechanismCluster,
		MinCluster:  5,
		ClusterPay:  map[Symbol]int{"A": 10, "B": 10},
		MaxCascades: 4,
	}
}

// Цикл всегда завершается не позже maxCascades+1 оценок
func TestCascadeTermination(t *testing.T) {
	cfg := cascadeTestConfig()

	// Злонамеренный оценщик, выигрывающий бесконечно
	ev := &countingEvaluator{winsLeft: -1}
	grid := GenerateGrid(3, 3, cfg.Symbols, rng.New(1))

	_, combos, steps, limitHit := RunCascades(grid, ev, cfg, 100, rng.New(2))

	if !limitHit {
		t.Fatal("предел каскадов не сработал")
	}
	if len(steps) != cfg.MaxCascades {
		t.Fatalf("шагов: %d, предел: %d", len(steps), cfg.MaxCascades)
	}
	if ev.evaluations != cfg.MaxCascades+1 {
		t.Fatalf("оценок: %d, допустимо: %d", ev.evaluations, cfg.MaxCascades+1)
	}
	if len(combos) != cfg.MaxCascades {
		t.Fatalf("накопленный результат потерян: %d комбинаций", len(combos))
	}
}

func TestCascadeStopsWithoutWins(t *testing.T) {
	cfg := cascadeTestConfig()
	ev := &countingEvaluator{winsLeft: 2}
	grid := GenerateGrid(3, 3, cfg.Symbols, rng.New(3))

	_, combos, steps, limitHit := RunCascades(grid, ev, cfg, 100, rng.New(4))

	if limitHit {
		t.Fatal("ложный сигнал предела")
	}
	if len(steps) != 2 || len(combos) != 2 {
		t.Fatalf("шагов: %d, комбинаций: %d", len(steps), len(combos))
	}
	// Две победы + финальная пустая оценка
	if ev.evaluations != 3 {
		t.Fatalf("оценок: %d", ev.evaluations)
	}
}

// Все выигрышные ячейки шага удаляются разом, гравитация — потом
func TestCollapseGravity(t *testing.T) {
	grid := Grid{
		{"A", "B", "C"},
		{EmptySymbol, "B", EmptySymbol},
		{"C", EmptySymbol, EmptySymbol},
	}
	collapse(grid)

	want := Grid{
		{EmptySymbol, EmptySymbol, EmptySymbol},
		{"A", "B", EmptySymbol},
		{"C", "B", "C"},
	}
	for r := range want {
		for c := range want[r] {
			if grid[r][c] != want[r][c] {
				t.Fatalf("гравитация: ячейка (%d,%d) = %q, ожидали %q",
					r, c, grid[r][c], want[r][c])
			}
		}
	}
}

func TestRefillFillsAllEmpties(t *testing.T) {
	grid := Grid{
		{EmptySymbol, EmptySymbol, "A"},
		{EmptySymbol, "B", "A"},
		{"A", "B", "B"},
	}
	symbols := []SymbolDef{{ID: "A", Weight: 1}, {ID: "B", Weight: 1}}

	dropped := refill(grid, symbols, rng.New(5))

	if len(dropped) != 3 {
		t.Fatalf("упавших символов: %d", len(dropped))
	}
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] == EmptySymbol {
				t.Fatalf("пустая ячейка после refill: (%d,%d)", r, c)
			}
		}
	}
}

// Повтор каскадов с тем же сидом даёт то же финальное поле
func TestCascadeDeterministic(t *testing.T) {
	cfg := cascadeTestConfig()
	cfg.Rows, cfg.Cols = 5, 5
	cfg.MaxCascades = 20

	run := func() Grid {
		r := rng.NewFromString("cascade-seed")
		grid := GenerateGrid(5, 5, cfg.Symbols, r)
		final, _, _, _ := RunCascades(grid, ClusterEvaluator{}, cfg, 100, r)
		return final
	}

	a, b := run(), run()
	for r := range a {
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				t.Fatalf("расхождение в (%d,%d): %q != %q", r, c, a[r][c], b[r][c])
			}
		}
	}
}
