package ticket

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
	ErrUnknownTicket       = errors.New("unknown ticket")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Play — покупка и вскрытие билета: списание ставки, резолв карточки,
// начисление выигрыша и запись в журнал раундов
func (s *serv) Play(ctx context.Context, req model.TicketRequest) (*model.TicketResult, error) {
	if req.Bet <= 0 {
		return nil, ErrInvalidBet
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("no user in context")
	}

	cfg, ok := s.gamesCfg.Ticket(req.GameID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTicket, req.GameID)
	}

	seed, err := newSeed(req.ClientSeed)
	if err != nil {
		return nil, err
	}

	result := &model.TicketResult{
		RoundID: uuid.NewString(),
		Seed:    seed,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		balance, err := s.userRepo.GetBalance(ctx, userID)
		if err != nil {
			return err
		}
		if balance < req.Bet {
			return ErrInsufficientBalance
		}
		balance -= req.Bet

		card := engine.ResolveTicket(cfg, req.Bet, seed)
		result.Ticket = card
		result.TotalPayout = card.TotalPayout

		balance += card.TotalPayout
		if err := s.userRepo.UpdateBalance(ctx, userID, balance); err != nil {
			return err
		}
		result.Balance = balance

		return s.roundRepo.SaveRound(ctx, &model.Round{
			ID:        result.RoundID,
			UserID:    userID,
			GameID:    req.GameID,
			Seed:      seed,
			Bet:       req.Bet,
			Payout:    card.TotalPayout,
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.Update(req.Bet, result.TotalPayout)

	return result, nil
}
