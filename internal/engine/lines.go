package engine

// Evaluator — общий интерфейс трёх стратегий оценки поля.
// Какая из них работает — определяет механика конфигурации
type Evaluator interface {
	Evaluate(grid Grid, cfg *GameConfig, bet int) []WinningCombination
}

// NewEvaluator возвращает стратегию под активную механику
func NewEvaluator(m Mechanism) Evaluator {
	switch m {
	case MechanismWays:
		return WaysEvaluator{}
	case MechanismCluster:
		return ClusterEvaluator{}
	default:
		return LineEvaluator{}
	}
}

// LineEvaluator — оценка по фиксированным линиям выплат
type LineEvaluator struct{}

// Evaluate проходит каждую линию слева направо. Серия считается от первого
// барабана, wild засчитывается за любой символ, обрывается на первом
// несовпадении. На линию отдаётся только самая длинная серия с якорем слева
func (LineEvaluator) Evaluate(grid Grid, cfg *GameConfig, bet int) []WinningCombination {
	symbols, _ := alphabetOrDefault(cfg.Symbols)
	wilds, scatters := symbolFlags(symbols)

	rows, cols := grid.Rows(), grid.Cols()

	var wins []WinningCombination
	for i, line := range cfg.Lines {
		// Линия под другую геометрию поля — пропускаем, это не ошибка
		if len(line) != cols || !lineInBounds(line, rows) {
			continue
		}

		// Базовый символ — первый не-wild и не-scatter на линии
		var base Symbol
		for col := 0; col < cols; col++ {
			sym := grid[line[col]][col]
			if !wilds[sym] && !scatters[sym] {
				base = sym
				break
			}
		}
		if base == EmptySymbol {
			continue
		}
		// Скаттер не начинает линию
		if scatters[grid[line[0]][0]] {
			continue
		}

		// Длина серии base+wild с первого барабана
		count := 0
		for col := 0; col < cols; col++ {
			sym := grid[line[col]][col]
			if sym == base || wilds[sym] {
				count++
			} else {
				break
			}
		}

		if count < minPayCount(cfg.Paytable, base) {
			continue
		}
		// Таблица обязана покрывать каждую длину от минимума до cols: дырка
		// в таблице — серия пропадает целиком, отката к более короткой
		// оплачиваемой длине нет
		pay, ok := cfg.Paytable[base][count]
		if !ok {
			continue
		}

		positions := make([]Position, count)
		for col := 0; col < count; col++ {
			positions[col] = Position{Row: line[col], Col: col}
		}

		wins = append(wins, WinningCombination{
			Symbol:    base,
			Count:     count,
			Payout:    pay * bet / 100,
			Positions: positions,
			Kind:      KindLine,
			Line:      i + 1,
		})
	}
	return wins
}

// lineInBounds проверяет, что все ряды линии попадают в поле
func lineInBounds(line LineDefinition, rows int) bool {
	for _, row := range line {
		if row < 0 || row >= rows {
			return false
		}
	}
	return true
}

// minPayCount — минимальная оплачиваемая длина серии по таблице выплат
func minPayCount(table Paytable, sym Symbol) int {
	min := 3
	for c := range table[sym] {
		if c < min {
			min = c
		}
	}
	return min
}
