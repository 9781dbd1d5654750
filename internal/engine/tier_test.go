package engine

import (
	"math"
	"testing"

	"slotforge_backend/internal/engine/rng"
)

func TestSelectTierEmpty(t *testing.T) {
	if _, ok := SelectTier(nil, rng.New(1)); ok {
		t.Fatal("пустая таблица тиров вернула тир")
	}
}

// Эмпирические частоты сходятся к вероятностям таблицы
func TestSelectTierConvergence(t *testing.T) {
	tiers := []PrizeTier{
		{ID: "lose", Probability: 0.70},
		{ID: "small", Probability: 0.20, Payout: 100, Win: true},
		{ID: "big", Probability: 0.09, Payout: 500, Win: true},
		{ID: "jackpot", Probability: 0.01, Payout: 10000, Win: true},
	}

	r := rng.New(12345)
	counts := map[string]int{}
	const n = 100000
	for i := 0; i < n; i++ {
		tier, ok := SelectTier(tiers, r)
		if !ok {
			t.Fatal("тир не выбран")
		}
		counts[tier.ID]++
	}

	for _, tier := range tiers {
		got := float64(counts[tier.ID]) / float64(n)
		if math.Abs(got-tier.Probability) > 0.01 {
			t.Fatalf("тир %s: частота %v при вероятности %v", tier.ID, got, tier.Probability)
		}
	}
}

// Весовые тиры нормализуются к вероятностям
func TestSelectTierWeights(t *testing.T) {
	tiers := []PrizeTier{
		{ID: "a", Weight: 3},
		{ID: "b", Weight: 1},
	}

	r := rng.New(777)
	counts := map[string]int{}
	const n = 100000
	for i := 0; i < n; i++ {
		tier, _ := SelectTier(tiers, r)
		counts[tier.ID]++
	}

	got := float64(counts["a"]) / float64(n)
	if got < 0.74 || got > 0.76 {
		t.Fatalf("вес 3 из 4: частота %v", got)
	}
}

// Отрицательные веса защитно игнорируются
func TestSelectTierNegativeWeight(t *testing.T) {
	tiers := []PrizeTier{
		{ID: "bad", Weight: -5},
		{ID: "good", Weight: 2},
	}

	r := rng.New(9)
	for i := 0; i < 1000; i++ {
		tier, ok := SelectTier(tiers, r)
		if !ok || tier.ID != "good" {
			t.Fatalf("выбран тир %q", tier.ID)
		}
	}
}

// Недобор массы из-за округления — возвращается последний тир
func TestSelectTierFallback(t *testing.T) {
	tiers := []PrizeTier{
		{ID: "a", Probability: 0.1},
		{ID: "b", Probability: 0.1},
	}

	r := rng.New(4242)
	for i := 0; i < 1000; i++ {
		tier, ok := SelectTier(tiers, r)
		if !ok {
			t.Fatal("тир не выбран")
		}
		if tier.ID != "a" && tier.ID != "b" {
			t.Fatalf("неизвестный тир %q", tier.ID)
		}
	}
}
