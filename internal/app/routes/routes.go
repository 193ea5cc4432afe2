package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/controllers"
)

// recordHandlers is the handler set every resource exposes
type recordHandlers interface {
	GetAll(c *gin.Context)
	GetByKey(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Search(c *gin.Context)
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrls *controllers.Controllers) {
	api := router.Group("/api")

	registerRecordRoutes(api, "/ranks", ctrls.AcademicRankController)
	registerRecordRoutes(api, "/courses", ctrls.CourseController)
	registerRecordRoutes(api, "/lecturers", ctrls.LecturerController)
	registerRecordRoutes(api, "/semesters", ctrls.SemesterController)
	registerRecordRoutes(api, "/students", ctrls.StudentController)
	registerRecordRoutes(api, "/users", ctrls.UserController)
	registerRecordRoutes(api, "/schedules", ctrls.ScheduleEntryController)
}

func registerRecordRoutes(api *gin.RouterGroup, path string, h recordHandlers) {
	group := api.Group(path)
	{
		group.GET("", h.GetAll)
		group.GET("/search", h.Search)
		group.GET("/:id", h.GetByKey)
		group.POST("", h.Create)
		group.PUT("", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
