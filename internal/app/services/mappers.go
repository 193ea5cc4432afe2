package services

import (
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// Mappers convert DTO dates to epoch milliseconds and back in the configured zone.
// Required pointer fields are checked by validation before ToEntity runs.

type academicRankMapper struct{}

func (academicRankMapper) ToEntity(d dto.AcademicRankDTO) models.AcademicRank {
	return models.AcademicRank{
		ID:          d.RankID,
		NumericRank: derefInt(d.NumericRank),
		RankName:    d.RankName,
	}
}

func (academicRankMapper) ToDTO(e models.AcademicRank) dto.AcademicRankDTO {
	return dto.AcademicRankDTO{
		RankID:      e.ID,
		NumericRank: intPtr(e.NumericRank),
		RankName:    e.RankName,
	}
}

func (academicRankMapper) EntityID(e models.AcademicRank) int64 { return e.ID }

type courseMapper struct{}

func (courseMapper) ToEntity(d dto.CourseDTO) models.Course {
	return models.Course{
		ID:          d.CourseID,
		Title:       d.CourseTitle,
		Description: copyString(d.CourseDescription),
	}
}

func (courseMapper) ToDTO(e models.Course) dto.CourseDTO {
	return dto.CourseDTO{
		CourseID:          e.ID,
		CourseTitle:       e.Title,
		CourseDescription: copyString(e.Description),
	}
}

func (courseMapper) EntityID(e models.Course) int64 { return e.ID }

type lecturerMapper struct{}

func (lecturerMapper) ToEntity(d dto.LecturerDTO) models.Lecturer {
	return models.Lecturer{
		ID:                  d.LecturerID,
		Name:                d.LecturerName,
		DateOfBirth:         d.DateOfBirth.MillisPtr(),
		NumericAcademicRank: derefInt(d.NumericAcademicRank),
	}
}

func (lecturerMapper) ToDTO(e models.Lecturer) dto.LecturerDTO {
	return dto.LecturerDTO{
		LecturerID:          e.ID,
		LecturerName:        e.Name,
		DateOfBirth:         helpers.DateFromMillisPtr(e.DateOfBirth),
		NumericAcademicRank: intPtr(e.NumericAcademicRank),
	}
}

func (lecturerMapper) EntityID(e models.Lecturer) int64 { return e.ID }

type semesterMapper struct{}

func (semesterMapper) ToEntity(d dto.SemesterDTO) models.Semester {
	return models.Semester{
		ID:        d.EntryID,
		Code:      d.SemesterID,
		Name:      d.SemesterName,
		Year:      derefInt(d.SemesterYear),
		StartTime: d.SemesterStartTime.UnixMilli(),
		EndTime:   d.SemesterEndTime.UnixMilli(),
	}
}

func (semesterMapper) ToDTO(e models.Semester) dto.SemesterDTO {
	return dto.SemesterDTO{
		EntryID:           e.ID,
		SemesterID:        e.Code,
		SemesterName:      e.Name,
		SemesterYear:      intPtr(e.Year),
		SemesterStartTime: helpers.DateFromMillis(e.StartTime),
		SemesterEndTime:   helpers.DateFromMillis(e.EndTime),
	}
}

func (semesterMapper) EntityID(e models.Semester) int64 { return e.ID }

type studentMapper struct{}

func (studentMapper) ToEntity(d dto.StudentDTO) models.Student {
	return models.Student{
		ID:          d.StudentID,
		Name:        d.StudentName,
		DateOfBirth: d.DateOfBirth.MillisPtr(),
	}
}

func (studentMapper) ToDTO(e models.Student) dto.StudentDTO {
	return dto.StudentDTO{
		StudentID:   e.ID,
		StudentName: e.Name,
		DateOfBirth: helpers.DateFromMillisPtr(e.DateOfBirth),
	}
}

func (studentMapper) EntityID(e models.Student) int64 { return e.ID }

type userMapper struct{}

func (userMapper) ToEntity(d dto.UserDTO) models.User {
	return models.User{
		ID:        d.UserID,
		Login:     d.Login,
		Password:  d.Password,
		IsActive:  d.IsActive != nil && *d.IsActive,
		StudentID: derefInt64(d.StudentID),
	}
}

func (userMapper) ToDTO(e models.User) dto.UserDTO {
	active := e.IsActive
	return dto.UserDTO{
		UserID:    e.ID,
		Login:     e.Login,
		Password:  e.Password,
		IsActive:  &active,
		StudentID: int64Ptr(e.StudentID),
	}
}

func (userMapper) EntityID(e models.User) int64 { return e.ID }

type scheduleEntryMapper struct{}

func (scheduleEntryMapper) ToEntity(d dto.ScheduleEntryDTO) models.ScheduleEntry {
	return models.ScheduleEntry{
		ID:           d.EntryID,
		StudentID:    derefInt64(d.StudentID),
		LecturerID:   derefInt64(d.LecturerID),
		CourseID:     derefInt64(d.CourseID),
		SemesterCode: d.SemesterID,
		Time:         d.Time.UnixMilli(),
		Location:     d.Location,
	}
}

func (scheduleEntryMapper) ToDTO(e models.ScheduleEntry) dto.ScheduleEntryDTO {
	return dto.ScheduleEntryDTO{
		EntryID:    e.ID,
		StudentID:  int64Ptr(e.StudentID),
		LecturerID: int64Ptr(e.LecturerID),
		CourseID:   int64Ptr(e.CourseID),
		Time:       helpers.DateTimeFromMillis(e.Time),
		Location:   e.Location,
		SemesterID: e.SemesterCode,
	}
}

func (scheduleEntryMapper) EntityID(e models.ScheduleEntry) int64 { return e.ID }

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefInt64(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func intPtr(i int) *int { return &i }

func int64Ptr(i int64) *int64 { return &i }

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	s := *p
	return &s
}
