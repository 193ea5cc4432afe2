package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	appModels "github.com/yigit/registrar/internal/app/models"
)

type fakeRanks struct {
	existing map[int]bool
	failOn   string
	inserted []appModels.AcademicRank
}

func (f *fakeRanks) Insert(ctx context.Context, rank *appModels.AcademicRank) (int64, error) {
	if rank.RankName == f.failOn {
		return 0, errors.New("connection reset")
	}
	if f.existing[rank.NumericRank] {
		return 0, &pgconn.PgError{Code: "23505", ConstraintName: "academic_ranks_numeric_rank_key"}
	}
	f.existing[rank.NumericRank] = true
	rank.ID = int64(len(f.inserted) + 1)
	f.inserted = append(f.inserted, *rank)
	return rank.ID, nil
}

func TestCreateDefaultDataIsIdempotent(t *testing.T) {
	ranks := &fakeRanks{existing: map[int]bool{}}

	assert.NoError(t, CreateDefaultData(context.Background(), ranks, zerolog.Nop()))
	assert.Len(t, ranks.inserted, len(DefaultRanks))

	assert.NoError(t, CreateDefaultData(context.Background(), ranks, zerolog.Nop()))
	assert.Len(t, ranks.inserted, len(DefaultRanks))
}

func TestCreateDefaultDataCollectsFailures(t *testing.T) {
	ranks := &fakeRanks{existing: map[int]bool{1: true}, failOn: "Lecturer"}

	err := CreateDefaultData(context.Background(), ranks, zerolog.Nop())

	assert.ErrorContains(t, err, "connection reset")
	assert.Len(t, ranks.inserted, len(DefaultRanks)-2)
}
