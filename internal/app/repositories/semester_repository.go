package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// SemesterRepository handles semester database operations. Semesters are looked up by code.
type SemesterRepository struct {
	*sqlStore[models.Semester, string]
}

// NewSemesterRepository creates a new SemesterRepository
func NewSemesterRepository(conn QuerierProvider) *SemesterRepository {
	return &SemesterRepository{newSQLStore[models.Semester, string](conn, table[models.Semester]{
		name:      "semesters",
		columns:   []string{"id", "code", "name", "year", "start_time", "end_time"},
		keyColumn: "code",
		orderBy:   "id ASC",
		id:        func(s models.Semester) int64 { return s.ID },
		setID:     func(s *models.Semester, id int64) { s.ID = id },
		values: func(s models.Semester) map[string]interface{} {
			return map[string]interface{}{
				"code":       s.Code,
				"name":       s.Name,
				"year":       s.Year,
				"start_time": s.StartTime,
				"end_time":   s.EndTime,
			}
		},
		search: func(criterion string) squirrel.Sqlizer {
			return squirrel.ILike{"name": helpers.ContainsPattern(criterion)}
		},
	})}
}
