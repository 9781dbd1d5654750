package engine

import "slotforge_backend/internal/engine/rng"

// Встроенный набор символов на случай пустого алфавита в конфигурации.
// Движок тотален: структурно корректная конфигурация никогда не роняет раунд
var defaultSymbols = []SymbolDef{
	{ID: "A", Weight: 5},
	{ID: "B", Weight: 4},
	{ID: "C", Weight: 3},
	{ID: "D", Weight: 2},
}

// alphabetOrDefault возвращает алфавит конфигурации либо встроенный набор
func alphabetOrDefault(symbols []SymbolDef) ([]SymbolDef, bool) {
	if len(symbols) == 0 {
		return defaultSymbols, true
	}
	return symbols, false
}

// GenerateGrid заполняет поле rows x cols символами по весам алфавита.
// Порядок розыгрыша строго построчный (row-major), ровно rows*cols вызовов
// генератора — это часть контракта детерминизма: повтор с тем же сидом
// воспроизводит то же поле
func GenerateGrid(rows, cols int, symbols []SymbolDef, r *rng.RNG) Grid {
	symbols, _ = alphabetOrDefault(symbols)

	weights := make([]int, len(symbols))
	for i, s := range symbols {
		weights[i] = s.Weight
	}

	grid := make(Grid, rows)
	for row := 0; row < rows; row++ {
		grid[row] = make([]Symbol, cols)
		for col := 0; col < cols; col++ {
			grid[row][col] = symbols[r.WeightedIndex(weights)].ID
		}
	}
	return grid
}

// drawSymbol разыгрывает один символ по весам (для дозаполнения каскадов)
func drawSymbol(symbols []SymbolDef, r *rng.RNG) Symbol {
	symbols, _ = alphabetOrDefault(symbols)

	weights := make([]int, len(symbols))
	for i, s := range symbols {
		weights[i] = s.Weight
	}
	return symbols[r.WeightedIndex(weights)].ID
}

// symbolFlags возвращает быстрые таблицы wild/scatter по алфавиту
func symbolFlags(symbols []SymbolDef) (wilds, scatters map[Symbol]bool) {
	wilds = make(map[Symbol]bool)
	scatters = make(map[Symbol]bool)
	for _, s := range symbols {
		if s.Wild {
			wilds[s.ID] = true
		}
		if s.Scatter {
			scatters[s.ID] = true
		}
	}
	return wilds, scatters
}
