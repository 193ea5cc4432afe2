package repositories

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/helpers"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// ScheduleEntryRepository handles schedule entry database operations
type ScheduleEntryRepository struct {
	*sqlStore[models.ScheduleEntry, int64]
}

// NewScheduleEntryRepository creates a new ScheduleEntryRepository
func NewScheduleEntryRepository(conn QuerierProvider) *ScheduleEntryRepository {
	return &ScheduleEntryRepository{newSQLStore[models.ScheduleEntry, int64](conn, table[models.ScheduleEntry]{
		name:      "schedule_entries",
		columns:   []string{"id", "student_id", "lecturer_id", "course_id", "semester_code", "time", "location"},
		keyColumn: "id",
		orderBy:   "id ASC",
		id:        func(e models.ScheduleEntry) int64 { return e.ID },
		setID:     func(e *models.ScheduleEntry, id int64) { e.ID = id },
		values: func(e models.ScheduleEntry) map[string]interface{} {
			return map[string]interface{}{
				"student_id":    e.StudentID,
				"lecturer_id":   e.LecturerID,
				"course_id":     e.CourseID,
				"semester_code": e.SemesterCode,
				"time":          e.Time,
				"location":      e.Location,
			}
		},
		search: scheduleSearch,
	})}
}

// scheduleSearch matches the course id when the criterion is an integer,
// otherwise the location or semester code.
func scheduleSearch(criterion string) squirrel.Sqlizer {
	if courseID, err := strconv.Atoi(criterion); err == nil {
		return squirrel.Eq{"course_id": courseID}
	}

	pattern := helpers.ContainsPattern(criterion)
	return squirrel.Or{
		squirrel.ILike{"location": pattern},
		squirrel.ILike{"semester_code": pattern},
	}
}

func (r *ScheduleEntryRepository) countDistinctCoursesQuery(studentID int64, semesterCode string) squirrel.SelectBuilder {
	return r.sb.Select("COUNT(DISTINCT course_id)").
		From("schedule_entries").
		Where(squirrel.Eq{"student_id": studentID, "semester_code": semesterCode}).
		GroupBy("semester_code").
		Prefix("SELECT COALESCE((").
		Suffix("), 0)")
}

// CountDistinctCourses returns how many different courses the student takes in the semester
func (r *ScheduleEntryRepository) CountDistinctCourses(ctx context.Context, studentID int64, semesterCode string) (int, error) {
	sql, args, err := r.countDistinctCoursesQuery(studentID, semesterCode).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count distinct courses SQL")
		return 0, fmt.Errorf("failed to build count distinct courses query: %w", err)
	}

	var count int
	if err := r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Str("semester", semesterCode).Msg("Error counting distinct courses")
		return 0, fmt.Errorf("error counting distinct courses: %w", err)
	}

	return count, nil
}
