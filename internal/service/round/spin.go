package round

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotforge_backend/internal/engine"
	"slotforge_backend/internal/middleware"
	"slotforge_backend/internal/model"

	"github.com/google/uuid"
)

var (
	ErrInvalidBet          = errors.New("bet must be positive")
	ErrUnknownGame         = errors.New("unknown game")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Spin — платный спин: списание ставки (или фриспин), резолв раунда,
// начисление выигрыша и запись в журнал. Всё в одной транзакции
func (s *serv) Spin(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error) {
	if req.Bet <= 0 {
		return nil, ErrInvalidBet
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("no user in context")
	}

	cfg, ok := s.gamesCfg.Game(req.GameID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGame, req.GameID)
	}

	seed, err := newSeed(req.ClientSeed)
	if err != nil {
		return nil, err
	}

	result := &model.SpinResult{
		RoundID: uuid.NewString(),
		Seed:    seed,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.stateRepo.EnsureState(ctx, userID, req.GameID); err != nil {
			return err
		}

		freeSpins, err := s.stateRepo.GetFreeSpinCount(ctx, userID, req.GameID)
		if err != nil {
			return err
		}

		balance, err := s.userRepo.GetBalance(ctx, userID)
		if err != nil {
			return err
		}

		// Фриспин не трогает баланс, обычный спин списывает ставку
		if freeSpins > 0 {
			result.InFreeSpin = true
			freeSpins--
		} else {
			if balance < req.Bet {
				return ErrInsufficientBalance
			}
			balance -= req.Bet
		}

		round := engine.Resolve(cfg, req.Bet, seed)
		result.Round = round
		result.TotalPayout = engine.ApplyMaxPayout(round.TotalPayout, req.Bet, cfg.MaxWinXBet)
		result.AwardedFreeSpins = round.AwardedFreeSpins

		balance += result.TotalPayout
		freeSpins += round.AwardedFreeSpins

		if err := s.userRepo.UpdateBalance(ctx, userID, balance); err != nil {
			return err
		}
		if err := s.stateRepo.UpdateFreeSpinCount(ctx, userID, req.GameID, freeSpins); err != nil {
			return err
		}

		result.Balance = balance
		result.FreeSpinCount = freeSpins

		return s.roundRepo.SaveRound(ctx, &model.Round{
			ID:           result.RoundID,
			UserID:       userID,
			GameID:       req.GameID,
			Seed:         seed,
			Bet:          req.Bet,
			Payout:       result.TotalPayout,
			CascadeCount: round.CascadeCount,
			CreatedAt:    time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	// Статистика вне транзакции: её потеря при откате не критична
	s.statsRepo.Update(req.Bet, result.TotalPayout)

	return result, nil
}
