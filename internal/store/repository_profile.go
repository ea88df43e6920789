package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
	sq "github.com/Masterminds/squirrel"
)

type profileRepository struct {
	finders map[models.ProfileKind]ProfileFinder
	logger  *logger.Logger
}

// NewProfileRepository returns a [ProfileRepository] with one finder per
// profile table.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		finders: map[models.ProfileKind]ProfileFinder{
			models.ProfileKindAdmin:     &adminProfiles{db: db},
			models.ProfileKindRecruiter: &recruiterProfiles{db: db},
			models.ProfileKindCandidate: &candidateProfiles{db: db},
		},
		logger: logger,
	}
}

func (r *profileRepository) FindProfile(ctx context.Context, kind models.ProfileKind, userID int64) (models.Profile, error) {
	finder, ok := r.finders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProfile, kind)
	}
	return finder.FindByUserID(ctx, userID)
}

func (r *profileRepository) UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if profile == nil {
		return nil, ErrUnsupportedProfile
	}
	finder, ok := r.finders[profile.Kind()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProfile, profile.Kind())
	}
	return finder.Update(ctx, profile)
}

type adminProfiles struct{ db *DB }

func (f *adminProfiles) FindByUserID(ctx context.Context, userID int64) (models.Profile, error) {
	return findProfile(ctx, f.db, adminsTable, adminColumns, userID, scanAdmin)
}

func (f *adminProfiles) Update(ctx context.Context, profile models.Profile) (models.Profile, error) {
	p, ok := profile.(models.AdminProfile)
	if !ok {
		return nil, ErrUnsupportedProfile
	}
	return updateProfile(ctx, f.db, adminsTable, adminColumns, p.UserID, map[string]any{
		"first_name": p.FirstName,
		"last_name":  p.LastName,
	}, scanAdmin)
}

type recruiterProfiles struct{ db *DB }

func (f *recruiterProfiles) FindByUserID(ctx context.Context, userID int64) (models.Profile, error) {
	return findProfile(ctx, f.db, recruitersTable, recruiterColumns, userID, scanRecruiter)
}

func (f *recruiterProfiles) Update(ctx context.Context, profile models.Profile) (models.Profile, error) {
	p, ok := profile.(models.RecruiterProfile)
	if !ok {
		return nil, ErrUnsupportedProfile
	}
	return updateProfile(ctx, f.db, recruitersTable, recruiterColumns, p.UserID, map[string]any{
		"company_name": p.CompanyName,
		"sector":       p.Sector,
	}, scanRecruiter)
}

type candidateProfiles struct{ db *DB }

func (f *candidateProfiles) FindByUserID(ctx context.Context, userID int64) (models.Profile, error) {
	return findProfile(ctx, f.db, candidatesTable, candidateColumns, userID, scanCandidate)
}

func (f *candidateProfiles) Update(ctx context.Context, profile models.Profile) (models.Profile, error) {
	p, ok := profile.(models.CandidateProfile)
	if !ok {
		return nil, ErrUnsupportedProfile
	}
	return updateProfile(ctx, f.db, candidatesTable, candidateColumns, p.UserID, map[string]any{
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"birth_date": p.BirthDate,
	}, scanCandidate)
}

type profileScanner func(row *sql.Row) (models.Profile, error)

func findProfile(ctx context.Context, db *DB, table string, columns []string, userID int64, scan profileScanner) (models.Profile, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var profile models.Profile
	err = db.withRetry(ctx, func() error {
		var scanErr error
		profile, scanErr = scan(db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case err == nil:
		return profile, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrProfileNotFound
	default:
		logger.FromContext(ctx).Err(err).Str("func", "findProfile").Str("table", table).Msg("error finding profile")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func updateProfile(ctx context.Context, db *DB, table string, columns []string, userID int64, values map[string]any, scan profileScanner) (models.Profile, error) {
	query, args, err := psql.Update(table).
		SetMap(values).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + columnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	profile, err := scan(db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return profile, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrProfileNotFound
	default:
		logger.FromContext(ctx).Err(err).Str("func", "updateProfile").Str("table", table).Msg("error updating profile")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// insertProfile inserts p inside the registration transaction.
func insertProfile(ctx context.Context, q querier, p models.Profile) (models.Profile, error) {
	var (
		builder sq.InsertBuilder
		scan    profileScanner
		columns []string
	)

	switch v := p.(type) {
	case models.AdminProfile:
		builder = psql.Insert(adminsTable).
			Columns("user_id", "first_name", "last_name").
			Values(v.UserID, v.FirstName, v.LastName)
		scan, columns = scanAdmin, adminColumns
	case models.RecruiterProfile:
		builder = psql.Insert(recruitersTable).
			Columns("user_id", "company_name", "sector").
			Values(v.UserID, v.CompanyName, v.Sector)
		scan, columns = scanRecruiter, recruiterColumns
	case models.CandidateProfile:
		builder = psql.Insert(candidatesTable).
			Columns("user_id", "first_name", "last_name", "birth_date").
			Values(v.UserID, v.FirstName, v.LastName, v.BirthDate)
		scan, columns = scanCandidate, candidateColumns
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedProfile, p)
	}

	query, args, err := builder.Suffix("RETURNING " + columnList(columns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scan(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	return created, nil
}

func scanAdmin(row *sql.Row) (models.Profile, error) {
	var p models.AdminProfile
	if err := row.Scan(&p.UserID, &p.FirstName, &p.LastName, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func scanRecruiter(row *sql.Row) (models.Profile, error) {
	var p models.RecruiterProfile
	if err := row.Scan(&p.UserID, &p.CompanyName, &p.Sector, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func scanCandidate(row *sql.Row) (models.Profile, error) {
	var p models.CandidateProfile
	if err := row.Scan(&p.UserID, &p.FirstName, &p.LastName, &p.BirthDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func columnList(columns []string) string {
	return strings.Join(columns, ", ")
}
