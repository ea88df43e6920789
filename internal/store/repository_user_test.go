package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return &DB{DB: conn, logger: logger.Nop()}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgConstraintError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func userRow(id int64, email, hash string, googleID any, role models.Role, active bool) *sqlmock.Rows {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var passwordHash any
	if hash != "" {
		passwordHash = hash
	}
	return sqlmock.NewRows(userColumns).
		AddRow(id, email, passwordHash, googleID, string(role), active, false, now, now)
}

func TestCreateUserWithProfile_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC()

	user := models.User{
		Email:        "  Jane@Example.COM ",
		PasswordHash: "$2a$10$hash",
		Role:         models.RoleCandidate,
		IsActive:     true,
	}
	profile := models.CandidateProfile{FirstName: "Jane", LastName: "Doe", BirthDate: models.NewDate(now)}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("jane@example.com", "$2a$10$hash", nil, "candidate", true, false).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "created_at", "updated_at"}).AddRow(int64(7), now, now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO candidates")).
		WithArgs(int64(7), "Jane", "Doe", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(candidateColumns).AddRow(int64(7), "Jane", "Doe", now, now, now))
	mock.ExpectCommit()

	created, createdProfile, err := repo.CreateUserWithProfile(context.Background(), user, profile)
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.Equal(t, int64(7), createdProfile.OwnerID())
	assert.Equal(t, "Jane", createdProfile.(models.CandidateProfile).FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserWithProfile_UniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{name: "email", constraint: usersEmailKey, want: ErrEmailAlreadyExists},
		{name: "google id", constraint: usersGoogleIDKey, want: ErrExternalIDAlreadyBound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
				WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, tt.constraint))
			mock.ExpectRollback()

			user := models.User{Email: "a@b.c", PasswordHash: "h", Role: models.RoleRecruiter}
			_, _, err := repo.CreateUserWithProfile(context.Background(), user, models.RecruiterProfile{})
			assert.ErrorIs(t, err, tt.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateUserWithProfile_ProfileFailureRollsBack(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "created_at", "updated_at"}).AddRow(int64(3), now, now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO admins")).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	user := models.User{Email: "root@jobs.io", PasswordHash: "h", Role: models.RoleSuperAdmin}
	_, _, err := repo.CreateUserWithProfile(context.Background(), user, models.AdminProfile{})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserWithProfile_ProfileKindMismatch(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Email: "a@b.c", PasswordHash: "h", Role: models.RoleCandidate}
	_, _, err := repo.CreateUserWithProfile(context.Background(), user, models.RecruiterProfile{})
	assert.ErrorIs(t, err, ErrUnsupportedProfile)

	_, _, err = repo.CreateUserWithProfile(context.Background(), user, nil)
	assert.ErrorIs(t, err, ErrUnsupportedProfile)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByEmail(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, email")).
		WithArgs("jane@example.com").
		WillReturnRows(userRow(5, "jane@example.com", "$2a$hash", "google-sub", models.RoleCandidate, true))

	user, err := repo.FindUserByEmail(context.Background(), " JANE@example.com")
	require.NoError(t, err)

	assert.Equal(t, int64(5), user.UserID)
	assert.Equal(t, models.RoleCandidate, user.Role)
	assert.True(t, user.HasPassword())
	assert.Equal(t, "google-sub", user.ExternalID())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByID_NullableColumns(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, email")).
		WithArgs(int64(9)).
		WillReturnRows(userRow(9, "g@example.com", "", "sub-9", models.RoleCandidate, true))

	user, err := repo.FindUserByID(context.Background(), 9)
	require.NoError(t, err)
	assert.False(t, user.HasPassword())
	assert.True(t, user.HasExternalIdentity())
}

func TestFindUser_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, email")).
		WithArgs("missing-sub").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByExternalID(context.Background(), "missing-sub")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUser_UnknownRole(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, email")).
		WillReturnRows(userRow(1, "x@y.z", "h", nil, models.Role("owner"), true))

	_, err := repo.FindUserByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, models.ErrUnknownRole)
}

func TestFindUser_RetriesTransientErrors(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	repo.db.errorClassificator = NewPostgresErrorClassifier()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, email")).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, email")).
		WillReturnRows(userRow(2, "r@y.z", "h", nil, models.RoleRecruiter, true))

	user, err := repo.FindUserByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUser_DoesNotRetryPermanentErrors(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	repo.db.errorClassificator = NewPostgresErrorClassifier()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, email")).
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindUserByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBindExternalID(t *testing.T) {
	t.Run("binds when unbound", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET google_id = $1")).
			WithArgs("sub-1", true, int64(4)).
			WillReturnRows(userRow(4, "a@b.c", "h", "sub-1", models.RoleCandidate, true))

		user, err := repo.BindExternalID(context.Background(), 4, "sub-1")
		require.NoError(t, err)
		assert.Equal(t, "sub-1", user.ExternalID())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already bound", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
			WillReturnRows(sqlmock.NewRows(userColumns))

		_, err := repo.BindExternalID(context.Background(), 4, "sub-1")
		assert.ErrorIs(t, err, ErrExternalIDAlreadyBound)
	})

	t.Run("id owned by another user", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
			WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, usersGoogleIDKey))

		_, err := repo.BindExternalID(context.Background(), 4, "sub-1")
		assert.ErrorIs(t, err, ErrExternalIDAlreadyBound)
	})
}

func TestSetActiveAndDelete(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET is_active = $1")).
		WithArgs(false, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE user_id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.SetActive(context.Background(), 3, false))
	require.NoError(t, repo.DeleteUser(context.Background(), 3))
	assert.ErrorIs(t, repo.DeleteUser(context.Background(), 404), ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
