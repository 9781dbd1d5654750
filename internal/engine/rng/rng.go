package rng

// Детерминированный генератор псевдослучайных чисел (Mulberry32).
// Одинаковый сид даёт одинаковую последовательность бит-в-бит на любой
// платформе. Состояние никогда не глобальное: экземпляр создаётся на каждый
// раунд и явно передаётся во все функции движка.

const (
	// Смещение FNV-1a (32 бита)
	fnvOffset = 2166136261
	// Простое число FNV (32 бита)
	fnvPrime = 16777619
)

type RNG struct {
	state uint32
}

// New создаёт генератор с числовым сидом
func New(seed uint32) *RNG {
	return &RNG{state: seed}
}

// NewFromString сворачивает строковый сид в 32-битное состояние через FNV-1a
func NewFromString(seed string) *RNG {
	h := uint32(fnvOffset)
	for i := 0; i < len(seed); i++ {
		h ^= uint32(seed[i])
		h *= fnvPrime
	}
	return &RNG{state: h}
}

// Next возвращает следующее число в [0, 1)
func (r *RNG) Next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Range возвращает целое в [min, max)
func (r *RNG) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(r.Next()*float64(max-min))
}

// Pick возвращает случайный элемент списка. Для пустого списка — нулевое значение
func Pick[T any](r *RNG, list []T) T {
	var zero T
	if len(list) == 0 {
		return zero
	}
	return list[r.Range(0, len(list))]
}

// WeightedIndex выбирает индекс по весам. Нулевые и отрицательные веса
// не участвуют; если сумма весов нулевая — равномерный выбор
func (r *RNG) WeightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return r.Range(0, len(weights))
	}

	n := r.Range(0, total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}
