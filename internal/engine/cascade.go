package engine

import "slotforge_backend/internal/engine/rng"

// Запасной предел итераций каскада, если конфигурация его не задала
const defaultMaxCascades = 100

// RunCascades крутит цикл каскадов: оценка -> одновременное удаление всех
// выигрышных ячеек -> гравитация по колонкам -> дозаполнение сверху -> снова
// оценка. Останавливается, когда выигрышей нет, либо по жёсткому пределу
// итераций. Предел — защита от бесконечного цикла при аномальной таблице
// выплат: цикл обрывается и возвращает накопленный результат, а не падает.
// Возвращает финальное поле, все комбинации, шаги и признак срыва по пределу
func RunCascades(grid Grid, ev Evaluator, cfg *GameConfig, bet int, r *rng.RNG) (Grid, []WinningCombination, []CascadeStep, bool) {
	maxCascades := cfg.MaxCascades
	if maxCascades <= 0 {
		maxCascades = defaultMaxCascades
	}

	grid = grid.Clone()

	var all []WinningCombination
	var steps []CascadeStep
	limitHit := false

	for {
		wins := ev.Evaluate(grid, cfg, bet)
		if len(wins) == 0 {
			break
		}
		if len(steps) == maxCascades {
			// Выигрыши ещё есть, но предел исчерпан — сигналим вызывающему
			limitHit = true
			break
		}

		all = append(all, wins...)

		// Все выигрышные ячейки шага удаляются разом, до гравитации
		for _, w := range wins {
			for _, p := range w.Positions {
				grid[p.Row][p.Col] = EmptySymbol
			}
		}

		collapse(grid)
		dropped := refill(grid, cfg.Symbols, r)

		steps = append(steps, CascadeStep{
			Combinations: wins,
			Dropped:      dropped,
		})
	}

	return grid, all, steps, limitHit
}

// collapse сдвигает символы каждой колонки вниз, пустоты остаются сверху
func collapse(grid Grid) {
	rows, cols := grid.Rows(), grid.Cols()
	for c := 0; c < cols; c++ {
		stack := make([]Symbol, 0, rows)
		for r := 0; r < rows; r++ {
			if grid[r][c] != EmptySymbol {
				stack = append(stack, grid[r][c])
			}
		}
		for r := 0; r < rows; r++ {
			grid[r][c] = EmptySymbol
		}
		for i, sym := range stack {
			grid[rows-len(stack)+i][c] = sym
		}
	}
}

// refill заполняет пустые ячейки новыми символами по весам алфавита.
// Порядок обхода — по колонкам сверху вниз, он фиксирован контрактом
// детерминизма. Возвращает список упавших символов для слоя отображения
func refill(grid Grid, symbols []SymbolDef, r *rng.RNG) []DropIn {
	rows, cols := grid.Rows(), grid.Cols()
	var dropped []DropIn
	for c := 0; c < cols; c++ {
		for row := 0; row < rows; row++ {
			if grid[row][c] != EmptySymbol {
				continue
			}
			sym := drawSymbol(symbols, r)
			grid[row][c] = sym
			dropped = append(dropped, DropIn{
				Position: Position{Row: row, Col: c},
				Symbol:   sym,
			})
		}
	}
	return dropped
}
