package engine

import "testing"

func linesConfig() *GameConfig {
	return &GameConfig{
		Rows: 3,
		Cols: 5,
		Symbols: []SymbolDef{
			{ID: "A", Weight: 5},
			{ID: "K", Weight: 5},
			{ID: "Q", Weight: 5},
			{ID: "W", Weight: 1, Wild: true},
			{ID: "S", Weight: 1, Scatter: true},
		},
		Mechanism: MechanismLines,
		Lines: []LineDefinition{
			{1, 1, 1, 1, 1}, // Средний ряд
			{0, 0, 0, 0, 0}, // Верхний ряд
			{2, 2, 2, 2, 2}, // Нижний ряд
		},
		Paytable: Paytable{
			"A": {3: 50, 4: 200, 5: 1000},
			"K": {3: 30, 4: 100, 5: 500},
			"Q": {3: 20, 4: 60, 5: 300},
		},
	}
}

func TestLineLeftAnchoredRun(t *testing.T) {
	grid := Grid{
		{"A", "A", "A", "K", "Q"},
		{"K", "K", "K", "K", "Q"},
		{"Q", "A", "Q", "Q", "Q"},
	}

	wins := LineEvaluator{}.Evaluate(grid, linesConfig(), 200)

	if len(wins) != 2 {
		t.Fatalf("ожидали 2 выигрышные линии, получили %d: %+v", len(wins), wins)
	}

	// Линия 1 (средний ряд): K x4
	if wins[0].Line != 1 || wins[0].Symbol != "K" || wins[0].Count != 4 {
		t.Fatalf("линия 1: %+v", wins[0])
	}
	if wins[0].Payout != 100*200/100 {
		t.Fatalf("выплата линии 1: %d", wins[0].Payout)
	}

	// Линия 2 (верхний ряд): A x3, серия обрывается на K
	if wins[1].Line != 2 || wins[1].Symbol != "A" || wins[1].Count != 3 {
		t.Fatalf("линия 2: %+v", wins[1])
	}

	// Позиции — первые count ячеек линии
	for col, p := range wins[0].Positions {
		if p.Row != 1 || p.Col != col {
			t.Fatalf("позиции линии 1: %+v", wins[0].Positions)
		}
	}
}

func TestLineWildSubstitution(t *testing.T) {
	grid := Grid{
		{"W", "A", "W", "A", "Q"},
		{"Q", "K", "K", "K", "K"},
		{"K", "Q", "A", "Q", "A"},
	}

	wins := LineEvaluator{}.Evaluate(grid, linesConfig(), 100)

	var top *WinningCombination
	for i := range wins {
		if wins[i].Line == 2 {
			top = &wins[i]
		}
	}
	if top == nil {
		t.Fatalf("wild-линия не найдена: %+v", wins)
	}
	// W A W A -> серия A длиной 4
	if top.Symbol != "A" || top.Count != 4 {
		t.Fatalf("wild-серия: %+v", top)
	}
}

// Одна линия не отдаёт два перекрывающихся выигрыша: только самая длинная серия
func TestLineSingleWinPerLine(t *testing.T) {
	grid := Grid{
		{"A", "A", "A", "A", "A"},
		{"Q", "Q", "Q", "K", "K"},
		{"K", "K", "Q", "A", "Q"},
	}

	wins := LineEvaluator{}.Evaluate(grid, linesConfig(), 100)
	perLine := map[int]int{}
	for _, w := range wins {
		perLine[w.Line]++
	}
	for line, n := range perLine {
		if n != 1 {
			t.Fatalf("линия %d отдала %d выигрышей", line, n)
		}
	}

	for _, w := range wins {
		if w.Line == 2 && w.Count != 5 {
			t.Fatalf("полная линия A: ожидали 5, получили %d", w.Count)
		}
	}
}

// Линия под чужую геометрию пропускается, а не роняет оценку
func TestLineOutOfBoundsSkipped(t *testing.T) {
	cfg := linesConfig()
	cfg.Lines = append(cfg.Lines,
		LineDefinition{5, 5, 5, 5, 5}, // Ряды вне поля
		LineDefinition{0, 0, 0},       // Короче поля
	)

	grid := Grid{
		{"A", "A", "A", "A", "A"},
		{"Q", "K", "Q", "K", "Q"},
		{"K", "Q", "K", "Q", "K"},
	}

	wins := LineEvaluator{}.Evaluate(grid, cfg, 100)
	for _, w := range wins {
		if w.Line > 3 {
			t.Fatalf("невалидная линия попала в выигрыши: %+v", w)
		}
	}
}

func TestLineScatterDoesNotStart(t *testing.T) {
	grid := Grid{
		{"S", "A", "A", "A", "A"},
		{"Q", "K", "Q", "K", "Q"},
		{"K", "Q", "K", "Q", "K"},
	}

	wins := LineEvaluator{}.Evaluate(grid, linesConfig(), 100)
	for _, w := range wins {
		if w.Line == 2 {
			t.Fatalf("линия со скаттером в начале выиграла: %+v", w)
		}
	}
}
