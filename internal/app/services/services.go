package services

import (
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/config"
)

// Services holds one record service per resource
type Services struct {
	AcademicRankService  RecordService[dto.AcademicRankDTO, int64]
	CourseService        RecordService[dto.CourseDTO, int64]
	LecturerService      RecordService[dto.LecturerDTO, int64]
	SemesterService      RecordService[dto.SemesterDTO, string]
	StudentService       RecordService[dto.StudentDTO, int64]
	UserService          RecordService[dto.UserDTO, string]
	ScheduleEntryService RecordService[dto.ScheduleEntryDTO, int64]
}

// NewServices wires the record services over the repositories
func NewServices(repos *repositories.Repositories, tx Transactor, cfg *config.Config) *Services {
	msgs := cfg.Messages

	advisor := NewScheduleAdvisor(repos.UserRepository, repos.ScheduleEntryRepository, tx, ScheduleAdvisorConfig{
		CourseLoadThreshold:  cfg.Registrar.CourseLoadThreshold,
		InactivityWindowDays: cfg.Registrar.InactivityWindowDays,
	})

	return &Services{
		AcademicRankService: NewRecordService[models.AcademicRank, dto.AcademicRankDTO, int64](
			repos.AcademicRankRepository, academicRankMapper{}, tx, msgs),
		CourseService: NewRecordService[models.Course, dto.CourseDTO, int64](
			repos.CourseRepository, courseMapper{}, tx, msgs),
		LecturerService: NewRecordService[models.Lecturer, dto.LecturerDTO, int64](
			repos.LecturerRepository, lecturerMapper{}, tx, msgs),
		SemesterService: NewRecordService[models.Semester, dto.SemesterDTO, string](
			repos.SemesterRepository, semesterMapper{}, tx, msgs,
			WithGuard[models.Semester](semesterGuard)),
		StudentService: NewRecordService[models.Student, dto.StudentDTO, int64](
			repos.StudentRepository, studentMapper{}, tx, msgs),
		UserService: NewRecordService[models.User, dto.UserDTO, string](
			repos.UserRepository, userMapper{}, tx, msgs),
		ScheduleEntryService: NewRecordService[models.ScheduleEntry, dto.ScheduleEntryDTO, int64](
			repos.ScheduleEntryRepository, scheduleEntryMapper{}, tx, msgs,
			WithAdvisor[models.ScheduleEntry](advisor)),
	}
}
