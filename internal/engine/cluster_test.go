package engine

import "testing"

func clusterConfig(minSize int) *GameConfig {
	return &GameConfig{
		Rows: 3,
		Cols: 3,
		Symbols: []SymbolDef{
			{ID: "A", Weight: 1},
			{ID: "B", Weight: 1},
		},
		Mechanism:  MechanismCluster,
		MinCluster: minSize,
		ClusterPay: map[Symbol]int{"A": 10, "B": 10},
	}
}

// Связность строго 4-соседская: "A" в углу (0,2) касается остальных "A"
// только по диагонали и в кластер не входит; одиночные "B" не дотягивают
// до минимума
func TestClusterConnectivity(t *testing.T) {
	grid := Grid{
		{"A", "B", "A"},
		{"A", "A", "B"},
		{"B", "A", "A"},
	}

	wins := ClusterEvaluator{}.Evaluate(grid, clusterConfig(5), 100)

	if len(wins) != 1 {
		t.Fatalf("ожидали ровно один кластер, получили %d", len(wins))
	}
	w := wins[0]
	if w.Symbol != "A" || w.Count != 5 {
		t.Fatalf("ожидали кластер A из 5 ячеек, получили %s из %d", w.Symbol, w.Count)
	}
	if w.Payout != 10*5*100/100 {
		t.Fatalf("выплата кластера: %d", w.Payout)
	}

	// Ровно связная компонента от (0,0); диагональный (0,2) исключён
	want := map[Position]bool{
		{Row: 0, Col: 0}: true,
		{Row: 1, Col: 0}: true,
		{Row: 1, Col: 1}: true,
		{Row: 2, Col: 1}: true,
		{Row: 2, Col: 2}: true,
	}
	seen := map[Position]bool{}
	for _, p := range w.Positions {
		if !want[p] {
			t.Fatalf("лишняя позиция в кластере: %+v", p)
		}
		if seen[p] {
			t.Fatalf("повторная позиция: %+v", p)
		}
		seen[p] = true
	}
	if len(seen) != len(want) {
		t.Fatalf("кластер покрыл %d позиций из %d", len(seen), len(want))
	}
}

func TestClusterMinSize(t *testing.T) {
	grid := Grid{
		{"A", "A", "B"},
		{"A", "B", "B"},
		{"B", "B", "A"},
	}

	// A-компонента из 3 меньше минимума 4; B-компонента из 5 проходит
	wins := ClusterEvaluator{}.Evaluate(grid, clusterConfig(4), 100)
	if len(wins) != 1 {
		t.Fatalf("ожидали один кластер, получили %d", len(wins))
	}
	if wins[0].Symbol != "B" || wins[0].Count != 5 {
		t.Fatalf("ожидали кластер B из 5, получили %s из %d", wins[0].Symbol, wins[0].Count)
	}
}

// Непересечение: два дизъюнктных кластера не делят позиции, порядок стабилен
func TestClustersDisjointAndStable(t *testing.T) {
	grid := Grid{
		{"A", "A", "B", "B"},
		{"A", "A", "B", "B"},
		{"C", "C", "C", "C"},
	}
	cfg := clusterConfig(4)
	cfg.Cols = 4
	cfg.ClusterPay["C"] = 5

	first := ClusterEvaluator{}.Evaluate(grid, cfg, 100)
	second := ClusterEvaluator{}.Evaluate(grid, cfg, 100)

	if len(first) != 3 {
		t.Fatalf("ожидали 3 кластера, получили %d", len(first))
	}
	// Построчный обход: сначала A, потом B, потом C
	if first[0].Symbol != "A" || first[1].Symbol != "B" || first[2].Symbol != "C" {
		t.Fatalf("нестабильный порядок кластеров: %v, %v, %v",
			first[0].Symbol, first[1].Symbol, first[2].Symbol)
	}

	occupied := map[Position]bool{}
	for _, w := range first {
		for _, p := range w.Positions {
			if occupied[p] {
				t.Fatalf("кластеры делят позицию %+v", p)
			}
			occupied[p] = true
		}
	}

	for i := range first {
		if first[i].Symbol != second[i].Symbol || first[i].Count != second[i].Count {
			t.Fatal("повторная оценка дала другой список кластеров")
		}
	}
}

// Скаттер не входит в кластеры
func TestClusterSkipsScatter(t *testing.T) {
	cfg := clusterConfig(5)
	cfg.Symbols = append(cfg.Symbols, SymbolDef{ID: "S", Scatter: true})

	grid := Grid{
		{"S", "S", "S"},
		{"S", "S", "S"},
		{"B", "B", "A"},
	}
	wins := ClusterEvaluator{}.Evaluate(grid, cfg, 100)
	if len(wins) != 0 {
		t.Fatalf("скаттеры собрались в кластер: %+v", wins)
	}
}
