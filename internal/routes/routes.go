package routes

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yukikurage/taskmaster-api/internal/constants"
	"github.com/yukikurage/taskmaster-api/internal/handlers"
	"github.com/yukikurage/taskmaster-api/internal/insights"
	"github.com/yukikurage/taskmaster-api/internal/middleware"
	"github.com/yukikurage/taskmaster-api/internal/models"
	"github.com/yukikurage/taskmaster-api/internal/repository"
	"github.com/yukikurage/taskmaster-api/internal/services"
	"github.com/yukikurage/taskmaster-api/internal/utils"
	"gorm.io/gorm"
)

// Dependencies carries what the router needs from the process
type Dependencies struct {
	DB             *gorm.DB
	SessionStore   sessions.Store
	Generator      *insights.Generator
	Location       *time.Location
	UsernameSuffix string
	EmailDomain    string
	// Clock overrides time.Now for date-dependent services when set
	Clock utils.Clock
}

// Handlers groups every HTTP handler
type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Task     *handlers.TaskHandler
	Team     *handlers.TeamHandler
	Shift    *handlers.ShiftHandler
	Standard *handlers.StandardTaskHandler
	Insight  *handlers.InsightHandler
}

// NewHandlers wires repositories, services and handlers over one database handle
func NewHandlers(deps Dependencies) Handlers {
	userRepo := repository.NewUserRepository(deps.DB)
	noteRepo := repository.NewNoteRepository(deps.DB)
	taskRepo := repository.NewTaskRepository(deps.DB)
	shiftRepo := repository.NewShiftRepository(deps.DB)
	standardRepo := repository.NewStandardTaskRepository(deps.DB)

	generator := deps.Generator
	if generator == nil {
		generator = insights.NewGenerator(nil)
	}

	authService := services.NewAuthService(userRepo, deps.UsernameSuffix, deps.EmailDomain)
	taskService := services.NewTaskService(taskRepo, userRepo, standardRepo, deps.Location)
	teamService := services.NewTeamService(userRepo, noteRepo, taskRepo, deps.Location)
	shiftService := services.NewShiftService(shiftRepo, userRepo, deps.Location)
	standardService := services.NewStandardTaskService(standardRepo, userRepo)
	insightService := services.NewInsightService(taskRepo, userRepo, noteRepo, standardRepo, generator)

	if deps.Clock != nil {
		taskService.SetClock(deps.Clock)
		teamService.SetClock(deps.Clock)
		shiftService.SetClock(deps.Clock)
	}

	return Handlers{
		Health:   handlers.NewHealthHandler(deps.DB),
		Auth:     handlers.NewAuthHandler(authService),
		Task:     handlers.NewTaskHandler(taskService),
		Team:     handlers.NewTeamHandler(teamService),
		Shift:    handlers.NewShiftHandler(shiftService),
		Standard: handlers.NewStandardTaskHandler(standardService),
		Insight:  handlers.NewInsightHandler(insightService),
	}
}

// NewRouter builds the gin engine with middleware and every route
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		sessions.Sessions(constants.SessionCookieName, deps.SessionStore),
	)

	Register(r, NewHandlers(deps))
	return r
}

// Register mounts the route table
func Register(r *gin.Engine, h Handlers) {
	r.GET("/health", h.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	managerOnly := middleware.RequireRoles(models.RoleManager)

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", middleware.RequireAuth(), h.Auth.GetCurrentUser)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", h.Task.ListTasks)
			tasks.GET("/board", h.Task.GetBoard)
			tasks.POST("", managerOnly, h.Task.CreateTask)
			tasks.POST("/daily", managerOnly, h.Task.AssignDaily)
			tasks.GET("/:id", h.Task.GetTask)
			tasks.PATCH("/:id", managerOnly, h.Task.UpdateTask)
			tasks.DELETE("/:id", managerOnly, h.Task.DeleteTask)
			tasks.POST("/:id/start", h.Task.StartTask)
			tasks.POST("/:id/complete", h.Task.CompleteTask)
			tasks.PUT("/:id/verification", managerOnly, h.Task.SetVerification)
		}

		standard := api.Group("/standard-tasks")
		standard.Use(middleware.RequireAuth())
		{
			standard.GET("", h.Standard.ListStandardTasks)
			standard.POST("", managerOnly, h.Standard.AddStandardTask)
		}

		team := api.Group("/team")
		team.Use(middleware.RequireAuth())
		{
			team.GET("", h.Team.ListTeam)
			team.GET("/:id", h.Team.GetMember)
			team.POST("/:id/notes", managerOnly, h.Team.AddNote)
			team.PUT("/:id/notes/:noteId", managerOnly, h.Team.EditNote)
		}

		shifts := api.Group("/shifts")
		shifts.Use(middleware.RequireAuth())
		{
			shifts.GET("", h.Shift.ListShifts)
			shifts.POST("", managerOnly, h.Shift.UploadShift)
		}

		api.GET("/dashboard", middleware.RequireAuth(), managerOnly, h.Insight.GetDashboard)

		insightsGroup := api.Group("/insights")
		insightsGroup.Use(middleware.RequireAuth(), managerOnly)
		{
			insightsGroup.GET("/dashboard", h.Insight.GetDashboardInsights)
			insightsGroup.GET("/suggestions/:userId", h.Insight.GetSuggestions)
			insightsGroup.POST("/feedback/:userId", h.Insight.GenerateFeedback)
		}
	}
}
