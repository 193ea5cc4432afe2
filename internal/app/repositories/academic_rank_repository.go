package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// AcademicRankRepository handles academic rank database operations
type AcademicRankRepository struct {
	*sqlStore[models.AcademicRank, int64]
}

// NewAcademicRankRepository creates a new AcademicRankRepository
func NewAcademicRankRepository(conn QuerierProvider) *AcademicRankRepository {
	return &AcademicRankRepository{newSQLStore[models.AcademicRank, int64](conn, table[models.AcademicRank]{
		name:      "academic_ranks",
		columns:   []string{"id", "numeric_rank", "rank_name"},
		keyColumn: "id",
		orderBy:   "numeric_rank ASC",
		id:        func(r models.AcademicRank) int64 { return r.ID },
		setID:     func(r *models.AcademicRank, id int64) { r.ID = id },
		values: func(r models.AcademicRank) map[string]interface{} {
			return map[string]interface{}{
				"numeric_rank": r.NumericRank,
				"rank_name":    r.RankName,
			}
		},
		search: func(criterion string) squirrel.Sqlizer {
			return squirrel.ILike{"rank_name": helpers.ContainsPattern(criterion)}
		},
	})}
}
