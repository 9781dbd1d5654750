package round_repo

import (
	"context"
	"database/sql"
	"errors"

	"slotforge_backend/internal/model"
	"slotforge_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "rounds"
	colID           = "id"
	colUserID       = "user_id"
	colGameID       = "game_id"
	colSeed         = "seed"
	colBet          = "bet"
	colPayout       = "payout"
	colCascadeCount = "cascade_count"
	colCreatedAt    = "created_at"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewRoundRepository(dbc *pgxpool.Pool) repository.RoundRepository {
	return &repo{
		dbc: dbc,
	}
}

// SaveRound - записывает раунд в журнал
func (r *repo) SaveRound(ctx context.Context, round *model.Round) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colUserID, colGameID, colSeed, colBet, colPayout, colCascadeCount, colCreatedAt).
		Values(round.ID, round.UserID, round.GameID, round.Seed, round.Bet, round.Payout, round.CascadeCount, round.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetRound - получение раунда по ID для реплея/аудита
func (r *repo) GetRound(ctx context.Context, id string) (*model.Round, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colGameID, colSeed, colBet, colPayout, colCascadeCount, colCreatedAt).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var round model.Round
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(
		&round.ID, &round.UserID, &round.GameID, &round.Seed,
		&round.Bet, &round.Payout, &round.CascadeCount, &round.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("round not found")
		}
		return nil, err
	}

	return &round, nil
}

// ListRounds - последние раунды пользователя
func (r *repo) ListRounds(ctx context.Context, userID int, limit int) ([]model.Round, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colGameID, colSeed, colBet, colPayout, colCascadeCount, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.dbc.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []model.Round
	for rows.Next() {
		var round model.Round
		err = rows.Scan(
			&round.ID, &round.UserID, &round.GameID, &round.Seed,
			&round.Bet, &round.Payout, &round.CascadeCount, &round.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}

	return rounds, rows.Err()
}
