package services

import (
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// semesterGuard rejects semesters that do not start strictly before they end
func semesterGuard(s models.Semester) error {
	if !s.IsConsistent() {
		return apperrors.ErrSemesterTimeOrder
	}
	return nil
}
