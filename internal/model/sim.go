package model

import "time"

// SimRequest — запуск пакетной проверки RTP на чистом резолвере
type SimRequest struct {
	GameID   string
	Rounds   int
	Workers  int
	Bet      int
	BaseSeed string
}

// SimReport — агрегированная статистика пакетного прогона
type SimReport struct {
	GameID   string
	Rounds   int
	Bet      int
	BaseSeed string

	TotalBet    int64
	TotalPayout int64
	// RTP в процентах
	RTP float64
	// Доля раундов с ненулевой выплатой
	HitRate float64
	// Дисперсия выплаты в кратности ставки
	Variance    float64
	AvgCascades float64
	MaxPayout   int

	Elapsed time.Duration
}

// SimSnapshot — накопленная статистика реальных спинов
type SimSnapshot struct {
	TotalSpins  int64
	TotalBet    int64
	TotalPayout int64
	RTP         float64
}
