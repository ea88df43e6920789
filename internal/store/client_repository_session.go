package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
)

// localSessionRepository keeps the session in the SQLite key/value table
// under the keys "token" and "user".
type localSessionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{db: db, logger: logger}
}

// Save writes both keys in one transaction.
func (r *localSessionRepository) Save(ctx context.Context, session models.LocalSession) error {
	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode local user: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, upsertLocalSessionValue, localSessionKeyToken, session.Token); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.Save").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if _, err = tx.ExecContext(ctx, upsertLocalSessionValue, localSessionKeyUser, string(userJSON)); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.Save").Msg("error saving user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// Load returns [ErrLocalSessionNotFound] unless both keys hold values.
func (r *localSessionRepository) Load(ctx context.Context) (models.LocalSession, error) {
	token, err := r.value(ctx, localSessionKeyToken)
	if err != nil {
		return models.LocalSession{}, err
	}
	userJSON, err := r.value(ctx, localSessionKeyUser)
	if err != nil {
		return models.LocalSession{}, err
	}

	var user *models.UserView
	if err = json.Unmarshal([]byte(userJSON), &user); err != nil {
		return models.LocalSession{}, fmt.Errorf("decode local user: %w", err)
	}
	if token == "" || user == nil {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}

	return models.LocalSession{Token: token, User: user}, nil
}

func (r *localSessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteLocalSession); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.Clear").Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *localSessionRepository) value(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, selectLocalSessionValue, key).Scan(&value)
	switch {
	case err == nil:
		return value, nil
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrLocalSessionNotFound
	default:
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
