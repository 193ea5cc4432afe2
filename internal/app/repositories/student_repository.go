package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	*sqlStore[models.Student, int64]
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(conn QuerierProvider) *StudentRepository {
	return &StudentRepository{newSQLStore[models.Student, int64](conn, table[models.Student]{
		name:      "students",
		columns:   []string{"id", "name", "date_of_birth"},
		keyColumn: "id",
		orderBy:   "id ASC",
		id:        func(s models.Student) int64 { return s.ID },
		setID:     func(s *models.Student, id int64) { s.ID = id },
		values: func(s models.Student) map[string]interface{} {
			return map[string]interface{}{
				"name":          s.Name,
				"date_of_birth": s.DateOfBirth,
			}
		},
		search: func(criterion string) squirrel.Sqlizer {
			return squirrel.ILike{"name": helpers.ContainsPattern(criterion)}
		},
	})}
}
