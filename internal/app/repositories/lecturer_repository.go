package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// LecturerRepository handles lecturer database operations
type LecturerRepository struct {
	*sqlStore[models.Lecturer, int64]
}

// NewLecturerRepository creates a new LecturerRepository
func NewLecturerRepository(conn QuerierProvider) *LecturerRepository {
	return &LecturerRepository{newSQLStore[models.Lecturer, int64](conn, table[models.Lecturer]{
		name:      "lecturers",
		columns:   []string{"id", "name", "date_of_birth", "numeric_academic_rank"},
		keyColumn: "id",
		orderBy:   "id ASC",
		id:        func(l models.Lecturer) int64 { return l.ID },
		setID:     func(l *models.Lecturer, id int64) { l.ID = id },
		values: func(l models.Lecturer) map[string]interface{} {
			return map[string]interface{}{
				"name":                  l.Name,
				"date_of_birth":         l.DateOfBirth,
				"numeric_academic_rank": l.NumericAcademicRank,
			}
		},
		search: func(criterion string) squirrel.Sqlizer {
			return squirrel.ILike{"name": helpers.ContainsPattern(criterion)}
		},
	})}
}
