package logic

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rosterboard/roster-api/internal/models"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
)

const (
	pgUniqueViolation = "23505"

	jerseyConstraint = "players_jersey_number_key"
)

// jerseyTakenError is the validation error for a duplicate jersey number.
func jerseyTakenError() models.FieldErrors {
	return models.FieldErrors{models.FieldJerseyNumber: {"The jersey number has already been taken."}}
}

// invalidCredentialsError is shared by unknown email and wrong password.
func invalidCredentialsError() models.FieldErrors {
	return models.FieldErrors{"email": {"Invalid credentials"}}
}

// translatePgError turns known constraint violations into validation errors.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == jerseyConstraint {
		return jerseyTakenError()
	}
	return err
}
