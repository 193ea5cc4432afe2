package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// Advisory note texts
const (
	NoteUnregisteredStudent = "Student is not registered as a user!"
	noteInactiveStudent     = "Course begins in less than %d days, but student is not active!"
	noteCourseLoad          = "Student has taken more than %d courses in single semester!"
)

const day = 24 * time.Hour

// UserLookup finds the user account owning a student
type UserLookup interface {
	FindByStudentID(ctx context.Context, studentID int64) (*models.User, error)
}

// CourseLoadCounter counts the distinct courses a student takes in a semester
type CourseLoadCounter interface {
	CountDistinctCourses(ctx context.Context, studentID int64, semesterCode string) (int, error)
}

// ScheduleAdvisorConfig holds the advisory thresholds
type ScheduleAdvisorConfig struct {
	CourseLoadThreshold  int
	InactivityWindowDays int
	Now                  func() time.Time
}

// ScheduleAdvisor checks a stored schedule entry for registration problems.
// Its notes never change the outcome of the operation.
type ScheduleAdvisor struct {
	users     UserLookup
	schedules CourseLoadCounter
	tx        Transactor
	threshold int
	window    int
	now       func() time.Time
	log       zerolog.Logger
}

// NewScheduleAdvisor creates a new schedule advisor
func NewScheduleAdvisor(users UserLookup, schedules CourseLoadCounter, tx Transactor, cfg ScheduleAdvisorConfig) *ScheduleAdvisor {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &ScheduleAdvisor{
		users:     users,
		schedules: schedules,
		tx:        tx,
		threshold: cfg.CourseLoadThreshold,
		window:    cfg.InactivityWindowDays,
		now:       now,
		log:       logger.Component("schedule_advisor"),
	}
}

// Advise runs the activity check, then the course load check.
func (a *ScheduleAdvisor) Advise(ctx context.Context, entry models.ScheduleEntry) []string {
	var notes []string
	if note := a.checkActivity(ctx, entry); note != "" {
		notes = append(notes, note)
	}
	if note := a.checkCourseLoad(ctx, entry); note != "" {
		notes = append(notes, note)
	}
	return notes
}

func (a *ScheduleAdvisor) checkActivity(ctx context.Context, entry models.ScheduleEntry) string {
	var user *models.User
	err := a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		user, err = a.users.FindByStudentID(ctx, entry.StudentID)
		return err
	})
	if err != nil || user == nil {
		a.log.Debug().Err(err).Int64("studentID", entry.StudentID).Msg("No user found for scheduled student")
		return NoteUnregisteredStudent
	}

	if user.IsActive {
		return ""
	}
	if wholeDaysBetween(a.now(), time.UnixMilli(entry.Time)) < int64(a.window) {
		return fmt.Sprintf(noteInactiveStudent, a.window)
	}
	return ""
}

func (a *ScheduleAdvisor) checkCourseLoad(ctx context.Context, entry models.ScheduleEntry) string {
	var count int
	err := a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		count, err = a.schedules.CountDistinctCourses(ctx, entry.StudentID, entry.SemesterCode)
		return err
	})
	if err != nil {
		a.log.Error().Err(err).Int64("studentID", entry.StudentID).Str("semester", entry.SemesterCode).Msg("Course load check failed")
		return ""
	}

	if count > a.threshold {
		return fmt.Sprintf(noteCourseLoad, a.threshold)
	}
	return ""
}

// wholeDaysBetween returns the absolute number of whole days between a and b
func wholeDaysBetween(a, b time.Time) int64 {
	days := int64(b.Sub(a) / day)
	if days < 0 {
		return -days
	}
	return days
}
