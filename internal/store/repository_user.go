package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUserWithProfile inserts the user row and then its profile row in
// the same transaction.
//
// Error handling:
//   - unique violation on the email index → [ErrEmailAlreadyExists];
//   - unique violation on the google id index → [ErrExternalIDAlreadyBound];
//   - any other failure rolls the transaction back and is wrapped.
func (r *userRepository) CreateUserWithProfile(ctx context.Context, user models.User, profile models.Profile) (models.User, models.Profile, error) {
	log := logger.FromContext(ctx)

	if profile == nil || profile.Kind() != user.Role.ProfileKind() {
		return models.User{}, nil, fmt.Errorf("%w: role %q", ErrUnsupportedProfile, user.Role)
	}

	query, args, err := psql.Insert(usersTable).
		Columns("email", "password_hash", "google_id", "role", "is_active", "is_email_verified").
		Values(models.NormalizeEmail(user.Email), nullString(user.PasswordHash), user.GoogleID,
			string(user.Role), user.IsActive, user.IsEmailVerified).
		Suffix("RETURNING user_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.User{}, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithProfile").Msg("error beginning transaction")
		return models.User{}, nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	user.Email = models.NormalizeEmail(user.Email)
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithProfile").Msg("error inserting user")
		return models.User{}, nil, mapUserWriteError(err)
	}

	created, err := insertProfile(ctx, tx, models.WithOwner(profile, user.UserID))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithProfile").Msg("error inserting profile")
		return models.User{}, nil, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithProfile").Msg("error committing transaction")
		return models.User{}, nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, created, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"user_id": userID})
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Expr("LOWER(email) = ?", models.NormalizeEmail(email)))
}

func (r *userRepository) FindUserByExternalID(ctx context.Context, externalID string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"google_id": externalID})
}

// BindExternalID is a conditional update: it only succeeds while the user
// has no google id, so of two concurrent binds exactly one wins.
func (r *userRepository) BindExternalID(ctx context.Context, userID int64, externalID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update(usersTable).
		Set("google_id", externalID).
		Set("is_email_verified", true).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Where("google_id IS NULL").
		Suffix("RETURNING " + columnList(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows):
		// the row exists (caller loaded it) but google_id is no longer NULL
		return models.User{}, ErrExternalIDAlreadyBound
	default:
		log.Err(err).Str("func", "*userRepository.BindExternalID").Msg("error binding external id")
		return models.User{}, mapUserWriteError(err)
	}
}

func (r *userRepository) SetActive(ctx context.Context, userID int64, active bool) error {
	query, args, err := psql.Update(usersTable).
		Set("is_active", active).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingUser(ctx, "*userRepository.SetActive", query, args)
}

func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	query, args, err := psql.Delete(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingUser(ctx, "*userRepository.DeleteUser", query, args)
}

func (r *userRepository) findUser(ctx context.Context, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	default:
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *userRepository) execAffectingUser(ctx context.Context, caller, query string, args []any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", caller).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var (
		user         models.User
		passwordHash sql.NullString
		googleID     sql.NullString
		role         string
	)

	err := row.Scan(&user.UserID, &user.Email, &passwordHash, &googleID, &role,
		&user.IsActive, &user.IsEmailVerified, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}

	user.PasswordHash = passwordHash.String
	if googleID.Valid {
		user.GoogleID = &googleID.String
	}
	if user.Role, err = models.ParseRole(role); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func mapUserWriteError(err error) error {
	if postgresError(err) == pgerrcode.UniqueViolation {
		if postgresConstraint(err) == usersGoogleIDKey {
			return ErrExternalIDAlreadyBound
		}
		return ErrEmailAlreadyExists
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
