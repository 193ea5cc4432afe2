package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
	"github.com/yigit/registrar/internal/pkg/logger"
)

var userColumns = []string{"id", "login", "password", "is_active", "student_id"}

// UserRepository handles user database operations. Users are looked up by login.
type UserRepository struct {
	*sqlStore[models.User, string]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(conn QuerierProvider) *UserRepository {
	return &UserRepository{newSQLStore[models.User, string](conn, table[models.User]{
		name:      "users",
		columns:   userColumns,
		keyColumn: "login",
		orderBy:   "id ASC",
		id:        func(u models.User) int64 { return u.ID },
		setID:     func(u *models.User, id int64) { u.ID = id },
		values: func(u models.User) map[string]interface{} {
			return map[string]interface{}{
				"login":      u.Login,
				"password":   u.Password,
				"is_active":  u.IsActive,
				"student_id": u.StudentID,
			}
		},
		search: func(criterion string) squirrel.Sqlizer {
			return squirrel.ILike{"login": helpers.ContainsPattern(criterion)}
		},
	})}
}

func (r *UserRepository) findByStudentIDQuery(studentID int64) squirrel.SelectBuilder {
	return r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1)
}

// FindByStudentID returns the user owning the student, or apperrors.ErrResourceNotFound
func (r *UserRepository) FindByStudentID(ctx context.Context, studentID int64) (*models.User, error) {
	sql, args, err := r.findByStudentIDQuery(studentID).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find user by student ID SQL")
		return nil, fmt.Errorf("failed to build find user by student query: %w", err)
	}

	rows, err := r.conn.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing find user by student ID query")
		return nil, fmt.Errorf("error finding user by student ID: %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error scanning user row")
		return nil, fmt.Errorf("error scanning user row: %w", err)
	}

	return &user, nil
}
