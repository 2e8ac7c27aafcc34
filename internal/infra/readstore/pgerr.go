package readstore

import (
	"errors"

	"staybook/internal/infra"

	"github.com/jackc/pgx/v5"
)

func classify(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
