package sim

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"slotforge_backend/internal/engine"
	"slotforge_backend/internal/model"
)

const maxSimRounds = 10_000_000

// Run гоняет чистый резолвер пакетом: настоящая проверка RTP вместо
// доверия к таблице выплат. Сиды нумеруются от базового, поэтому прогон
// воспроизводим целиком
func (s *serv) Run(ctx context.Context, req model.SimRequest) (*model.SimReport, error) {
	if req.Rounds <= 0 || req.Rounds > maxSimRounds {
		return nil, fmt.Errorf("rounds must be in 1..%d", maxSimRounds)
	}
	if req.Bet <= 0 {
		return nil, errors.New("bet must be positive")
	}

	cfg, ok := s.gamesCfg.Game(req.GameID)
	if !ok {
		return nil, fmt.Errorf("unknown game: %s", req.GameID)
	}

	workers := req.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > req.Rounds {
		workers = req.Rounds
	}

	baseSeed := req.BaseSeed
	if baseSeed == "" {
		baseSeed = "sim"
	}

	start := time.Now()

	type partial struct {
		payout   int64
		payoutSq float64
		hits     int
		cascades int64
		maxWin   int
	}

	parts := make([]partial, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			p := &parts[w]
			for i := w; i < req.Rounds; i += workers {
				if i%1024 == 0 && ctx.Err() != nil {
					return
				}
				seed := fmt.Sprintf("%s:%d", baseSeed, i)
				round := engine.Resolve(cfg, req.Bet, seed)
				payout := engine.ApplyMaxPayout(round.TotalPayout, req.Bet, cfg.MaxWinXBet)

				p.payout += int64(payout)
				x := float64(payout) / float64(req.Bet)
				p.payoutSq += x * x
				if payout > 0 {
					p.hits++
				}
				p.cascades += int64(round.CascadeCount)
				if payout > p.maxWin {
					p.maxWin = payout
				}
			}
		}(w)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &model.SimReport{
		GameID:   req.GameID,
		Rounds:   req.Rounds,
		Bet:      req.Bet,
		BaseSeed: baseSeed,
		TotalBet: int64(req.Rounds) * int64(req.Bet),
		Elapsed:  time.Since(start),
	}

	var hits int
	var cascades int64
	var sumSq float64
	for _, p := range parts {
		report.TotalPayout += p.payout
		hits += p.hits
		cascades += p.cascades
		sumSq += p.payoutSq
		if p.maxWin > report.MaxPayout {
			report.MaxPayout = p.maxWin
		}
	}

	n := float64(req.Rounds)
	mean := float64(report.TotalPayout) / float64(req.Bet) / n
	report.RTP = mean * 100
	report.HitRate = float64(hits) / n
	report.Variance = sumSq/n - mean*mean
	report.AvgCascades = float64(cascades) / n

	return report, nil
}
