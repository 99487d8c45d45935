package user

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	usererrors "assetdesk/internal/user/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return usererrors.ErrEmailTaken
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return usererrors.ErrEmailTaken
	}

	return err
}
