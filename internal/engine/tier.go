package engine

import "slotforge_backend/internal/engine/rng"

// PrizeTier — один дискретный исход тикетной (скретч) игры.
// Либо вес (режим пула билетов), либо вероятность — что задано в конфигурации
type PrizeTier struct {
	ID          string  `yaml:"id"`
	Payout      int     `yaml:"payout"` // Процент ставки
	Weight      int     `yaml:"weight"`
	Probability float64 `yaml:"probability"`
	Win         bool    `yaml:"win"`
}

// SelectTier выбирает тир по кумулятивной вероятности: один розыгрыш
// генератора, проход по списку с накоплением массы. Весовые тиры сначала
// нормализуются (weight / sum(weights)). Если из-за плавающего округления
// масса не дотянула до розыгрыша — возвращается последний тир, никогда
// "ничего не выбрано". Отрицательные веса игнорируются защитно: валидация
// таблицы — забота загрузчика конфигурации
func SelectTier(tiers []PrizeTier, r *rng.RNG) (PrizeTier, bool) {
	if len(tiers) == 0 {
		return PrizeTier{}, false
	}

	probs := tierProbabilities(tiers)

	draw := r.Next()
	cum := 0.0
	for i, p := range probs {
		cum += p
		if draw < cum {
			return tiers[i], true
		}
	}
	return tiers[len(tiers)-1], true
}

// tierProbabilities приводит таблицу к вероятностям
func tierProbabilities(tiers []PrizeTier) []float64 {
	probs := make([]float64, len(tiers))

	totalWeight := 0
	for _, t := range tiers {
		if t.Weight > 0 {
			totalWeight += t.Weight
		}
	}

	if totalWeight > 0 {
		for i, t := range tiers {
			if t.Weight > 0 {
				probs[i] = float64(t.Weight) / float64(totalWeight)
			}
		}
		return probs
	}

	for i, t := range tiers {
		if t.Probability > 0 {
			probs[i] = t.Probability
		}
	}
	return probs
}
