package main

import (
	"net"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack/project-management-api/internal/auth"
	"github.com/teamtrack/project-management-api/internal/config"
	"github.com/teamtrack/project-management-api/internal/database"
	"github.com/teamtrack/project-management-api/internal/handlers"
	"github.com/teamtrack/project-management-api/internal/logging"
	"github.com/teamtrack/project-management-api/internal/middleware"
	"github.com/teamtrack/project-management-api/internal/repository"
	"github.com/teamtrack/project-management-api/internal/services"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogFile)
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		logging.Logger.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logging.Logger.WithError(err).Fatal("failed to run migrations")
	}
	if err := database.Seed(db); err != nil {
		logging.Logger.WithError(err).Fatal("failed to seed reference data")
	}

	userRepo := repository.NewUserRepository(db)
	refRepo := repository.NewReferenceRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	access := services.NewAccessEvaluator(projectRepo, taskRepo)

	authService := services.NewAuthService(userRepo, refRepo, tokenRepo, tokens)
	referenceService := services.NewReferenceService(refRepo)
	projectService := services.NewProjectService(projectRepo, access)
	taskService := services.NewTaskService(taskRepo, refRepo, access)
	managerUserService := services.NewManagerUserService(userRepo, refRepo, taskRepo, projectRepo, access)
	managerProjectService := services.NewManagerProjectService(projectRepo, userRepo, refRepo, access)
	managerTaskService := services.NewManagerTaskService(taskRepo, projectRepo, userRepo, refRepo, access)
	reportService := services.NewReportService(taskRepo, projectRepo, userRepo, access)

	authHandler := handlers.NewAuthHandler(authService)
	referenceHandler := handlers.NewReferenceHandler(referenceService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	managerUserHandler := handlers.NewManagerUserHandler(managerUserService)
	managerProjectHandler := handlers.NewManagerProjectHandler(managerProjectService)
	managerTaskHandler := handlers.NewManagerTaskHandler(managerTaskService)
	reportHandler := handlers.NewReportHandler(reportService)

	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", middleware.RequireAuth(authService), authHandler.Logout)
			authGroup.GET("/me", middleware.RequireAuth(authService), authHandler.Me)
		}

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(authService))
		{
			references := authed.Group("/references")
			{
				references.GET("/roles", referenceHandler.ListRoles)
				references.GET("/positions", referenceHandler.ListPositions)
				references.GET("/task-statuses", referenceHandler.ListTaskStatuses)
				references.GET("/task-priorities", referenceHandler.ListTaskPriorities)
				references.GET("/project-statuses", referenceHandler.ListProjectStatuses)
			}

			projects := authed.Group("/projects")
			{
				projects.GET("", projectHandler.ListMyProjects)
				projects.GET("/:id", projectHandler.GetProject)
				projects.GET("/:id/tasks", projectHandler.GetProjectTasks)
				projects.GET("/:id/members", projectHandler.GetProjectMembers)
			}

			tasks := authed.Group("/tasks")
			{
				tasks.GET("", taskHandler.ListMyTasks)
				tasks.GET("/:id", taskHandler.GetTask)
				tasks.GET("/:id/assignees", taskHandler.GetTaskAssignees)
				tasks.PATCH("/:id/status", taskHandler.ChangeTaskStatus)
			}

			manager := authed.Group("/manager")
			{
				users := manager.Group("/users")
				{
					users.GET("", managerUserHandler.ListUsers)
					users.POST("", managerUserHandler.CreateUser)
					users.GET("/:id", managerUserHandler.GetUser)
					users.PUT("/:id", managerUserHandler.UpdateUser)
					users.DELETE("/:id", managerUserHandler.DeleteUser)
					users.GET("/:id/tasks", managerUserHandler.GetUserTasks)
					users.GET("/:id/projects", managerUserHandler.GetUserProjects)
				}

				managerProjects := manager.Group("/projects")
				{
					managerProjects.GET("", managerProjectHandler.ListProjects)
					managerProjects.POST("", managerProjectHandler.CreateProject)
					managerProjects.GET("/:id", managerProjectHandler.GetProject)
					managerProjects.PUT("/:id", managerProjectHandler.UpdateProject)
					managerProjects.DELETE("/:id", managerProjectHandler.DeleteProject)
					managerProjects.GET("/:id/members", managerProjectHandler.GetProjectMembers)
					managerProjects.POST("/:id/members/:user_id", managerProjectHandler.AddProjectMember)
					managerProjects.DELETE("/:id/members/:user_id", managerProjectHandler.RemoveProjectMember)
					managerProjects.GET("/:id/tasks", managerProjectHandler.GetProjectTasks)
				}

				managerTasks := manager.Group("/tasks")
				{
					managerTasks.GET("", managerTaskHandler.ListTasks)
					managerTasks.POST("", managerTaskHandler.CreateTask)
					managerTasks.GET("/:id", managerTaskHandler.GetTask)
					managerTasks.PUT("/:id", managerTaskHandler.UpdateTask)
					managerTasks.DELETE("/:id", managerTaskHandler.DeleteTask)
					managerTasks.GET("/:id/assignees", managerTaskHandler.GetTaskAssignees)
					managerTasks.POST("/:id/assignees/:user_id", managerTaskHandler.AddTaskAssignee)
					managerTasks.DELETE("/:id/assignees/:user_id", managerTaskHandler.RemoveTaskAssignee)
				}

				reportGroup := manager.Group("/reports")
				{
					reportGroup.GET("/task/:id", reportHandler.TaskReport)
					reportGroup.GET("/project/:id", reportHandler.ProjectReport)
					reportGroup.GET("/user/:id", reportHandler.UserReport)
				}
			}
		}
	}

	addr := net.JoinHostPort(cfg.ServerHost, cfg.ServerPort)
	logging.Logger.WithField("addr", addr).Info("starting server")
	if err := router.Run(addr); err != nil {
		logging.Logger.WithError(err).Fatal("server exited")
	}
}
