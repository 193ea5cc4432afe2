package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	*sqlStore[models.Course, int64]
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(conn QuerierProvider) *CourseRepository {
	return &CourseRepository{newSQLStore[models.Course, int64](conn, table[models.Course]{
		name:      "courses",
		columns:   []string{"id", "title", "description"},
		keyColumn: "id",
		orderBy:   "id ASC",
		id:        func(c models.Course) int64 { return c.ID },
		setID:     func(c *models.Course, id int64) { c.ID = id },
		values: func(c models.Course) map[string]interface{} {
			return map[string]interface{}{
				"title":       c.Title,
				"description": c.Description,
			}
		},
		search: func(criterion string) squirrel.Sqlizer {
			pattern := helpers.ContainsPattern(criterion)
			return squirrel.Or{
				squirrel.ILike{"title": pattern},
				squirrel.ILike{"description": pattern},
			}
		},
	})}
}
