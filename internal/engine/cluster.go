package engine

// ClusterEvaluator — оценка кластеров: группы одинаковых символов,
// связанные по четырём направлениям (без диагоналей)
type ClusterEvaluator struct{}

// Направления обхода: вправо, вниз, влево, вверх
var clusterDirs = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Evaluate ищет компоненты связности поиском в ширину с матрицей посещений,
// суммарно O(rows*cols) независимо от формы кластеров. Обход строго
// построчный, поэтому порядок кластеров в списке стабилен для данного поля
func (ClusterEvaluator) Evaluate(grid Grid, cfg *GameConfig, bet int) []WinningCombination {
	symbols, _ := alphabetOrDefault(cfg.Symbols)
	_, scatters := symbolFlags(symbols)

	rows, cols := grid.Rows(), grid.Cols()
	minSize := cfg.MinCluster
	if minSize <= 0 {
		minSize = 5
	}

	visited := make([][]bool, rows)
	for r := range visited {
		visited[r] = make([]bool, cols)
	}

	var wins []WinningCombination
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			sym := grid[row][col]
			if visited[row][col] || sym == EmptySymbol || scatters[sym] {
				continue
			}

			var component []Position
			queue := []Position{{Row: row, Col: col}}
			visited[row][col] = true

			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				component = append(component, cur)

				for _, d := range clusterDirs {
					nr, nc := cur.Row+d[0], cur.Col+d[1]
					if nr >= 0 && nr < rows && nc >= 0 && nc < cols &&
						!visited[nr][nc] && grid[nr][nc] == sym {
						visited[nr][nc] = true
						queue = append(queue, Position{Row: nr, Col: nc})
					}
				}
			}

			if len(component) < minSize {
				continue
			}

			base := cfg.ClusterPay[sym]
			wins = append(wins, WinningCombination{
				Symbol:    sym,
				Count:     len(component),
				Payout:    base * len(component) * bet / 100,
				Positions: component,
				Kind:      KindCluster,
			})
		}
	}
	return wins
}
