package engine

import "slotforge_backend/internal/engine/rng"

// Тикетная (скретч) семья игр: вместо оценки поля — выбор призового тира
// и раскладка карточки под выбранный исход

type TicketCategory string

const (
	// Выигрыш — N одинаковых символов на карточке
	CategoryMatch TicketCategory = "match"
	// Выигрыш — полностью совпавший ряд
	CategoryGrid TicketCategory = "grid"
	// Выигрыш — бонусная ячейка с множителем
	CategoryBonus TicketCategory = "bonus"
)

type TicketConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	Category TicketCategory `yaml:"category"`

	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	Symbols []Symbol `yaml:"symbols"`

	// Сколько одинаковых символов дают выигрыш (категория match)
	MatchCount int `yaml:"match_count"`

	Tiers []PrizeTier `yaml:"tiers"`

	// Множители выигрыша и шанс их выпадения
	Multipliers      []int   `yaml:"multipliers"`
	MultiplierChance float64 `yaml:"multiplier_chance"`
}

type TicketResult struct {
	TierID        string
	Win           bool
	Reveal        Grid
	WinPositions  []Position
	Multiplier    int
	TotalPayout   int
	BetMultiplier int
}

// Запасной алфавит карточки на случай пустой конфигурации. Символов должно
// хватать, чтобы проигрышная карточка раскладывалась без полного набора:
// len(symbols) * (matchCount-1) >= rows*cols
var defaultTicketSymbols = []Symbol{"cherry", "lemon", "star", "seven", "bell", "clover", "coin"}

// ResolveTicket — чистая функция разрешения тикетного раунда. Тот же контракт
// детерминизма, что и у Resolve: один сид — один результат
func ResolveTicket(cfg *TicketConfig, bet int, seed string) *TicketResult {
	r := rng.NewFromString(seed)

	rows, cols := cfg.Rows, cfg.Cols
	if rows <= 0 {
		rows = 3
	}
	if cols <= 0 {
		cols = 3
	}
	symbols := cfg.Symbols
	if len(symbols) == 0 {
		symbols = defaultTicketSymbols
	}
	matchCount := cfg.MatchCount
	if matchCount <= 0 {
		matchCount = 3
	}

	res := &TicketResult{Multiplier: 1}

	tier, ok := SelectTier(cfg.Tiers, r)
	if !ok {
		// Пустая таблица тиров — проигрышная карточка, не ошибка
		res.Reveal = revealLosing(rows, cols, symbols, matchCount, r)
		return res
	}

	res.TierID = tier.ID
	res.Win = tier.Win && tier.Payout > 0

	if !res.Win {
		res.Reveal = revealLosing(rows, cols, symbols, matchCount, r)
		return res
	}

	switch cfg.Category {
	case CategoryGrid:
		res.Reveal, res.WinPositions = revealGridWin(rows, cols, symbols, r)
	case CategoryBonus:
		res.Reveal, res.WinPositions = revealBonusWin(rows, cols, symbols, r)
	default:
		res.Reveal, res.WinPositions = revealMatchWin(rows, cols, symbols, matchCount, r)
	}

	// Бонусная категория всегда крутит множитель, остальные — по шансу
	if len(cfg.Multipliers) > 0 {
		if cfg.Category == CategoryBonus || (cfg.MultiplierChance > 0 && r.Next() < cfg.MultiplierChance) {
			res.Multiplier = rng.Pick(r, cfg.Multipliers)
			if res.Multiplier < 1 {
				res.Multiplier = 1
			}
		}
	}

	res.TotalPayout = tier.Payout * bet / 100 * res.Multiplier
	if bet > 0 {
		res.BetMultiplier = res.TotalPayout * 100 / bet
	}
	return res
}

// revealLosing заполняет карточку так, чтобы ни один символ не набрал
// matchCount повторов
func revealLosing(rows, cols int, symbols []Symbol, matchCount int, r *rng.RNG) Grid {
	counts := make(map[Symbol]int)
	grid := make(Grid, rows)
	for row := 0; row < rows; row++ {
		grid[row] = make([]Symbol, cols)
		for col := 0; col < cols; col++ {
			grid[row][col] = drawCapped(symbols, counts, matchCount-1, r)
		}
	}
	return grid
}

// drawCapped разыгрывает символ, не превысивший предел повторов.
// Если алфавит слишком мал и все символы у предела — возвращает наименее
// использованный (карточка из одного символа иначе не заполнится вовсе)
func drawCapped(symbols []Symbol, counts map[Symbol]int, limit int, r *rng.RNG) Symbol {
	for attempt := 0; attempt < len(symbols)*4; attempt++ {
		sym := rng.Pick(r, symbols)
		if counts[sym] < limit {
			counts[sym]++
			return sym
		}
	}
	least := symbols[0]
	for _, sym := range symbols {
		if counts[sym] < counts[least] {
			least = sym
		}
	}
	counts[least]++
	return least
}

// revealMatchWin раскладывает выигрышную карточку категории match:
// matchCount копий выигрышного символа на случайных ячейках, остальные
// ячейки не образуют второго набора
func revealMatchWin(rows, cols int, symbols []Symbol, matchCount int, r *rng.RNG) (Grid, []Position) {
	winSym := rng.Pick(r, symbols)

	total := rows * cols
	if matchCount > total {
		matchCount = total
	}

	// Случайные позиции под выигрышный символ
	order := make([]int, total)
	for i := range order {
		order[i] = i
	}
	for i := total - 1; i > 0; i-- {
		j := r.Range(0, i+1)
		order[i], order[j] = order[j], order[i]
	}

	winCells := make(map[int]bool, matchCount)
	positions := make([]Position, 0, matchCount)
	for _, idx := range order[:matchCount] {
		winCells[idx] = true
		positions = append(positions, Position{Row: idx / cols, Col: idx % cols})
	}

	counts := map[Symbol]int{winSym: matchCount}
	grid := make(Grid, rows)
	for row := 0; row < rows; row++ {
		grid[row] = make([]Symbol, cols)
		for col := 0; col < cols; col++ {
			if winCells[row*cols+col] {
				grid[row][col] = winSym
				continue
			}
			grid[row][col] = drawCapped(symbols, counts, matchCount-1, r)
		}
	}
	return grid, positions
}

// revealGridWin раскладывает выигрышную карточку категории grid:
// один полностью совпавший ряд, остальные ряды разбиты
func revealGridWin(rows, cols int, symbols []Symbol, r *rng.RNG) (Grid, []Position) {
	winRow := r.Range(0, rows)
	winSym := rng.Pick(r, symbols)

	grid := make(Grid, rows)
	positions := make([]Position, 0, cols)
	for row := 0; row < rows; row++ {
		grid[row] = make([]Symbol, cols)
		for col := 0; col < cols; col++ {
			grid[row][col] = rng.Pick(r, symbols)
		}
		if row == winRow {
			for col := 0; col < cols; col++ {
				grid[row][col] = winSym
				positions = append(positions, Position{Row: row, Col: col})
			}
			continue
		}
		breakUniformRow(grid[row], symbols)
	}
	return grid, positions
}

// breakUniformRow ломает случайно совпавший ряд заменой последней ячейки
func breakUniformRow(row []Symbol, symbols []Symbol) {
	if len(row) < 2 || len(symbols) < 2 {
		return
	}
	uniform := true
	for _, sym := range row[1:] {
		if sym != row[0] {
			uniform = false
			break
		}
	}
	if !uniform {
		return
	}
	for _, sym := range symbols {
		if sym != row[0] {
			row[len(row)-1] = sym
			return
		}
	}
}

// revealBonusWin раскладывает карточку категории bonus: обычное заполнение
// плюс одна бонусная ячейка
func revealBonusWin(rows, cols int, symbols []Symbol, r *rng.RNG) (Grid, []Position) {
	grid := make(Grid, rows)
	for row := 0; row < rows; row++ {
		grid[row] = make([]Symbol, cols)
		for col := 0; col < cols; col++ {
			grid[row][col] = rng.Pick(r, symbols)
		}
	}
	bonus := Position{Row: r.Range(0, rows), Col: r.Range(0, cols)}
	return grid, []Position{bonus}
}
