package engine

import "testing"

func waysConfig() *GameConfig {
	return &GameConfig{
		Rows: 3,
		Cols: 5,
		Symbols: []SymbolDef{
			{ID: "A", Weight: 5},
			{ID: "K", Weight: 5},
			{ID: "Q", Weight: 5},
			{ID: "W", Weight: 1, Wild: true},
		},
		Mechanism: MechanismWays,
		Paytable: Paytable{
			"A": {3: 50, 4: 200, 5: 1000},
			"K": {3: 30, 4: 100, 5: 500},
		},
	}
}

// Число способов — точное произведение совпадений по колонкам
func TestWaysExactProduct(t *testing.T) {
	grid := Grid{
		{"A", "A", "Q", "K", "Q"},
		{"A", "K", "A", "A", "K"},
		{"K", "A", "A", "Q", "Q"},
	}

	wins := WaysEvaluator{}.Evaluate(grid, waysConfig(), 100)

	var aWin *WinningCombination
	for i := range wins {
		if wins[i].Symbol == "A" {
			aWin = &wins[i]
		}
	}
	if aWin == nil {
		t.Fatalf("серия A не найдена: %+v", wins)
	}

	// Совпадения по колонкам: 2, 2, 2, 1 — обрыв на пятой (0 совпадений нет,
	// но выплата считается по длине 4)
	if aWin.Count != 4 {
		t.Fatalf("длина серии A: %d", aWin.Count)
	}
	if aWin.Ways != 2*2*2*1 {
		t.Fatalf("ways: ожидали 8, получили %d", aWin.Ways)
	}
	if aWin.Payout != 200*8*100/100 {
		t.Fatalf("выплата: %d", aWin.Payout)
	}
	// Все вошедшие позиции перечислены: 2+2+2+1
	if len(aWin.Positions) != 7 {
		t.Fatalf("позиций: %d", len(aWin.Positions))
	}
}

func TestWaysWildCounts(t *testing.T) {
	grid := Grid{
		{"A", "W", "Q", "Q", "Q"},
		{"K", "A", "A", "Q", "K"},
		{"Q", "Q", "W", "Q", "Q"},
	}

	wins := WaysEvaluator{}.Evaluate(grid, waysConfig(), 100)

	var aWin *WinningCombination
	for i := range wins {
		if wins[i].Symbol == "A" {
			aWin = &wins[i]
		}
	}
	if aWin == nil {
		t.Fatalf("серия A не найдена: %+v", wins)
	}
	// Колонки: A=1, W+A=2, A+W=2 -> обрыв на четвёртой
	if aWin.Count != 3 || aWin.Ways != 1*2*2 {
		t.Fatalf("wild-серия A: count=%d ways=%d", aWin.Count, aWin.Ways)
	}
}

func TestWaysStopsShortRun(t *testing.T) {
	grid := Grid{
		{"A", "A", "Q", "A", "A"},
		{"K", "K", "Q", "A", "K"},
		{"Q", "Q", "K", "Q", "Q"},
	}

	// Серия A обрывается на третьей колонке: длина 2 < 3, выигрыша нет
	wins := WaysEvaluator{}.Evaluate(grid, waysConfig(), 100)
	for _, w := range wins {
		if w.Symbol == "A" {
			t.Fatalf("короткая серия A выиграла: %+v", w)
		}
	}
}

// Порядок серий стабилен: по рядам нулевой колонки
func TestWaysStableOrder(t *testing.T) {
	grid := Grid{
		{"K", "K", "K", "Q", "Q"},
		{"A", "A", "A", "A", "Q"},
		{"Q", "K", "A", "K", "K"},
	}

	first := WaysEvaluator{}.Evaluate(grid, waysConfig(), 100)
	if len(first) != 2 {
		t.Fatalf("ожидали 2 серии, получили %d", len(first))
	}
	if first[0].Symbol != "K" || first[1].Symbol != "A" {
		t.Fatalf("порядок серий: %v, %v", first[0].Symbol, first[1].Symbol)
	}

	second := WaysEvaluator{}.Evaluate(grid, waysConfig(), 100)
	for i := range first {
		if first[i].Symbol != second[i].Symbol || first[i].Ways != second[i].Ways {
			t.Fatal("повторная оценка дала другой результат")
		}
	}
}
