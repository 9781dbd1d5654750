package engine

import "slotforge_backend/internal/engine/rng"

// Resolve — чистая функция разрешения раунда: (конфигурация, ставка, сид) ->
// результат. Никакого ввода-вывода, часов и глобального состояния; два вызова
// с одинаковыми аргументами дают бит-в-бит одинаковый результат. Ставка и
// выплаты — в минимальных денежных единицах
func Resolve(cfg *GameConfig, bet int, seed string) *RoundResult {
	r := rng.NewFromString(seed)

	symbols, usedDefault := alphabetOrDefault(cfg.Symbols)

	grid := GenerateGrid(cfg.Rows, cfg.Cols, symbols, r)
	ev := NewEvaluator(cfg.Mechanism)

	var (
		combos   []WinningCombination
		steps    []CascadeStep
		limitHit bool
	)

	if cfg.CascadesEnabled() {
		grid, combos, steps, limitHit = RunCascades(grid, ev, cfg, bet, r)
	} else {
		combos = ev.Evaluate(grid, cfg, bet)
	}

	res := &RoundResult{
		Grid:         grid,
		Combinations: combos,
		CascadeSteps: steps,
		CascadeCount: len(steps),
	}

	if usedDefault {
		res.FeaturesTriggered = append(res.FeaturesTriggered, FeatureDefaultSet)
	}
	if limitHit {
		res.FeaturesTriggered = append(res.FeaturesTriggered, FeatureCascadeLimit)
	}

	applyScatters(res, cfg, bet)

	total := 0
	for _, c := range res.Combinations {
		total += c.Payout
	}
	res.TotalPayout = total
	if bet > 0 {
		res.BetMultiplier = total * 100 / bet
	}

	return res
}

// applyScatters считает скаттеры на финальном поле, добавляет скаттерную
// комбинацию по таблице и начисляет фриспины
func applyScatters(res *RoundResult, cfg *GameConfig, bet int) {
	symbols, _ := alphabetOrDefault(cfg.Symbols)
	_, scatters := symbolFlags(symbols)
	if len(scatters) == 0 {
		return
	}

	var positions []Position
	var scatterSym Symbol
	for r := 0; r < res.Grid.Rows(); r++ {
		for c := 0; c < res.Grid.Cols(); c++ {
			if scatters[res.Grid[r][c]] {
				positions = append(positions, Position{Row: r, Col: c})
				scatterSym = res.Grid[r][c]
			}
		}
	}
	res.ScatterCount = len(positions)
	if len(positions) == 0 {
		return
	}

	if pay, ok := cfg.ScatterPay[len(positions)]; ok {
		res.Combinations = append(res.Combinations, WinningCombination{
			Symbol:    scatterSym,
			Count:     len(positions),
			Payout:    pay * bet / 100,
			Positions: positions,
			Kind:      KindScatter,
		})
	}

	if awarded, ok := cfg.FreeSpins[len(positions)]; ok && awarded > 0 {
		res.AwardedFreeSpins = awarded
		res.FeaturesTriggered = append(res.FeaturesTriggered, FeatureFreeSpins)
	}
}

// ApplyMaxPayout применяет предел выигрыша в кратности ставки. Движок
// возвращает честную сумму комбинаций, предел накладывает сервисный слой
func ApplyMaxPayout(amount, bet, maxXBet int) int {
	if maxXBet <= 0 {
		return amount
	}
	maxPay := maxXBet * bet
	if amount > maxPay {
		return maxPay
	}
	return amount
}
