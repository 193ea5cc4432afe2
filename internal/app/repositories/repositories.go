package repositories

// Repositories holds all the repository instances
type Repositories struct {
	AcademicRankRepository  *AcademicRankRepository
	CourseRepository        *CourseRepository
	LecturerRepository      *LecturerRepository
	SemesterRepository      *SemesterRepository
	StudentRepository       *StudentRepository
	UserRepository          *UserRepository
	ScheduleEntryRepository *ScheduleEntryRepository
}

// NewRepositories initializes all repositories
func NewRepositories(conn QuerierProvider) *Repositories {
	return &Repositories{
		AcademicRankRepository:  NewAcademicRankRepository(conn),
		CourseRepository:        NewCourseRepository(conn),
		LecturerRepository:      NewLecturerRepository(conn),
		SemesterRepository:      NewSemesterRepository(conn),
		StudentRepository:       NewStudentRepository(conn),
		UserRepository:          NewUserRepository(conn),
		ScheduleEntryRepository: NewScheduleEntryRepository(conn),
	}
}
