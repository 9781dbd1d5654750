package engine

// WaysEvaluator — оценка "ways-to-win": совпадения в смежных колонках
// от нулевой, независимо от ряда
type WaysEvaluator struct{}

// Evaluate для каждого стартового символа нулевой колонки перемножает число
// совпадений (с учётом wild) по смежным колонкам. Серия обрывается на первой
// колонке без совпадений, выигрыш — от трёх колонок. Число способов — точное
// произведение, никаких приближений
func (WaysEvaluator) Evaluate(grid Grid, cfg *GameConfig, bet int) []WinningCombination {
	symbols, _ := alphabetOrDefault(cfg.Symbols)
	wilds, scatters := symbolFlags(symbols)

	rows, cols := grid.Rows(), grid.Cols()
	if cols == 0 {
		return nil
	}

	var wins []WinningCombination
	seen := make(map[Symbol]bool)

	// Стартовые символы перебираются в порядке рядов нулевой колонки,
	// чтобы список комбинаций был стабилен для данного поля
	for row := 0; row < rows; row++ {
		base := grid[row][0]
		if seen[base] || wilds[base] || scatters[base] {
			continue
		}
		seen[base] = true

		ways := 1
		length := 0
		var positions []Position

		for col := 0; col < cols; col++ {
			matched := 0
			for r := 0; r < rows; r++ {
				sym := grid[r][col]
				if sym == base || wilds[sym] {
					matched++
					positions = append(positions, Position{Row: r, Col: col})
				}
			}
			if matched == 0 {
				break
			}
			ways *= matched
			length++
		}

		if length < 3 {
			continue
		}
		// Как и у линий: таблица обязана покрывать каждую длину от минимума
		// до cols, дырка в таблице гасит серию без отката к короткой длине
		pay, ok := cfg.Paytable[base][length]
		if !ok {
			continue
		}

		wins = append(wins, WinningCombination{
			Symbol:    base,
			Count:     length,
			Payout:    pay * ways * bet / 100,
			Positions: positions,
			Kind:      KindWay,
			Ways:      ways,
		})
	}
	return wins
}
