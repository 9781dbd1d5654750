package game_state_repo

import (
	"context"
	"database/sql"
	"errors"

	"slotforge_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "game_state"
	colUserID      = "user_id"
	colGameID      = "game_id"
	colFreeSpins   = "free_spins_count"
	conflictTarget = colUserID + ", " + colGameID
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewGameStateRepository(dbc *pgxpool.Pool) repository.GameStateRepository {
	return &repo{
		dbc: dbc,
	}
}

// GetFreeSpinCount - получение количества бесплатных спинов пользователя в игре
// Возвращает 0, если записи нет
func (r *repo) GetFreeSpinCount(ctx context.Context, userID int, gameID string) (int, error) {
	// Формируем запрос
	query := sq.Select(colFreeSpins).
		From(table).
		Where(sq.Eq{colUserID: userID, colGameID: gameID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	return count, nil
}

// UpdateFreeSpinCount - обновление количества бесплатных спинов.
// Если записи нет, создается новая с указанным количеством
func (r *repo) UpdateFreeSpinCount(ctx context.Context, userID int, gameID string, count int) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colFreeSpins, count).
		Where(sq.Eq{colUserID: userID, colGameID: gameID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	rowsAffected := res.RowsAffected()

	// Если rowsAffected = 0 - то записи не существует и делаем вставку
	if rowsAffected == 0 {
		insertQuery := sq.Insert(table).
			Columns(colUserID, colGameID, colFreeSpins).
			Values(userID, gameID, count).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err = insertQuery.ToSql()
		if err != nil {
			return err
		}

		_, err = r.dbc.Exec(ctx, sqlStr, args...)
		if err != nil {
			return err
		}
	}
	return nil
}

// EnsureState - создает запись состояния, если её ещё нет
func (r *repo) EnsureState(ctx context.Context, userID int, gameID string) error {
	// Формируем запрос на вставку, если записи не существует
	query := sq.Insert(table).
		Columns(colUserID, colGameID, colFreeSpins).
		Values(userID, gameID, 0).
		Suffix("ON CONFLICT (" + conflictTarget + ") DO NOTHING").
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
