package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/dberrors"
)

// RankInserter stores academic ranks
type RankInserter interface {
	Insert(ctx context.Context, rank *appModels.AcademicRank) (int64, error)
}

// DefaultRanks are the academic ranks every fresh installation starts with
var DefaultRanks = []appModels.AcademicRank{
	{NumericRank: 1, RankName: "Professor"},
	{NumericRank: 2, RankName: "Associate Professor"},
	{NumericRank: 3, RankName: "Assistant Professor"},
	{NumericRank: 4, RankName: "Lecturer"},
	{NumericRank: 5, RankName: "Teaching Assistant"},
}

// CreateDefaultData creates the default academic ranks if they don't exist.
// Ranks that are already present are skipped; other failures are collected.
func CreateDefaultData(ctx context.Context, ranks RankInserter, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Academic ranks)...")
	var finalErr error

	created := 0
	for _, def := range DefaultRanks {
		rank := def
		_, err := ranks.Insert(ctx, &rank)
		switch {
		case err == nil:
			created++
		case dberrors.IsDuplicateKeyError(err):
			lgr.Debug().Int("numericRank", rank.NumericRank).Msg("Academic rank already exists")
		default:
			lgr.Error().Err(err).Str("rankName", rank.RankName).Msg("Error creating academic rank")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("created", created).Msg("Default data check complete")
	return finalErr
}
