package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/teamtrack/project-management-api/internal/auth"
	"github.com/teamtrack/project-management-api/internal/database"
	"github.com/teamtrack/project-management-api/internal/middleware"
	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/repository"
	"github.com/teamtrack/project-management-api/internal/services"
)

type handlerTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	tokens      *auth.TokenManager
	userRepo    repository.UserRepository
	refRepo     repository.ReferenceRepository
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	authService *services.AuthService
}

// setupHandlerTestEnv wires the full route table against an in-memory
// database, mirroring the server entrypoint.
func setupHandlerTestEnv(t *testing.T) *handlerTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	refRepo := repository.NewReferenceRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	tokens := auth.NewTokenManager("test-secret")
	access := services.NewAccessEvaluator(projectRepo, taskRepo)

	authService := services.NewAuthService(userRepo, refRepo, tokenRepo, tokens)
	authHandler := NewAuthHandler(authService)
	referenceHandler := NewReferenceHandler(services.NewReferenceService(refRepo))
	projectHandler := NewProjectHandler(services.NewProjectService(projectRepo, access))
	taskHandler := NewTaskHandler(services.NewTaskService(taskRepo, refRepo, access))
	managerUserHandler := NewManagerUserHandler(
		services.NewManagerUserService(userRepo, refRepo, taskRepo, projectRepo, access))
	managerProjectHandler := NewManagerProjectHandler(
		services.NewManagerProjectService(projectRepo, userRepo, refRepo, access))
	managerTaskHandler := NewManagerTaskHandler(
		services.NewManagerTaskService(taskRepo, projectRepo, userRepo, refRepo, access))
	reportHandler := NewReportHandler(
		services.NewReportService(taskRepo, projectRepo, userRepo, access))

	router := gin.New()
	api := router.Group("/api/v1")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", middleware.RequireAuth(authService), authHandler.Logout)
	api.GET("/auth/me", middleware.RequireAuth(authService), authHandler.Me)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(authService))

	authed.GET("/references/roles", referenceHandler.ListRoles)
	authed.GET("/references/positions", referenceHandler.ListPositions)
	authed.GET("/references/task-statuses", referenceHandler.ListTaskStatuses)
	authed.GET("/references/task-priorities", referenceHandler.ListTaskPriorities)
	authed.GET("/references/project-statuses", referenceHandler.ListProjectStatuses)

	authed.GET("/projects", projectHandler.ListMyProjects)
	authed.GET("/projects/:id", projectHandler.GetProject)
	authed.GET("/projects/:id/tasks", projectHandler.GetProjectTasks)
	authed.GET("/projects/:id/members", projectHandler.GetProjectMembers)

	authed.GET("/tasks", taskHandler.ListMyTasks)
	authed.GET("/tasks/:id", taskHandler.GetTask)
	authed.GET("/tasks/:id/assignees", taskHandler.GetTaskAssignees)
	authed.PATCH("/tasks/:id/status", taskHandler.ChangeTaskStatus)

	authed.GET("/manager/users", managerUserHandler.ListUsers)
	authed.POST("/manager/users", managerUserHandler.CreateUser)
	authed.GET("/manager/users/:id", managerUserHandler.GetUser)
	authed.PUT("/manager/users/:id", managerUserHandler.UpdateUser)
	authed.DELETE("/manager/users/:id", managerUserHandler.DeleteUser)
	authed.GET("/manager/users/:id/tasks", managerUserHandler.GetUserTasks)
	authed.GET("/manager/users/:id/projects", managerUserHandler.GetUserProjects)

	authed.GET("/manager/projects", managerProjectHandler.ListProjects)
	authed.POST("/manager/projects", managerProjectHandler.CreateProject)
	authed.GET("/manager/projects/:id", managerProjectHandler.GetProject)
	authed.PUT("/manager/projects/:id", managerProjectHandler.UpdateProject)
	authed.DELETE("/manager/projects/:id", managerProjectHandler.DeleteProject)
	authed.GET("/manager/projects/:id/members", managerProjectHandler.GetProjectMembers)
	authed.POST("/manager/projects/:id/members/:user_id", managerProjectHandler.AddProjectMember)
	authed.DELETE("/manager/projects/:id/members/:user_id", managerProjectHandler.RemoveProjectMember)
	authed.GET("/manager/projects/:id/tasks", managerProjectHandler.GetProjectTasks)

	authed.GET("/manager/tasks", managerTaskHandler.ListTasks)
	authed.POST("/manager/tasks", managerTaskHandler.CreateTask)
	authed.GET("/manager/tasks/:id", managerTaskHandler.GetTask)
	authed.PUT("/manager/tasks/:id", managerTaskHandler.UpdateTask)
	authed.DELETE("/manager/tasks/:id", managerTaskHandler.DeleteTask)
	authed.GET("/manager/tasks/:id/assignees", managerTaskHandler.GetTaskAssignees)
	authed.POST("/manager/tasks/:id/assignees/:user_id", managerTaskHandler.AddTaskAssignee)
	authed.DELETE("/manager/tasks/:id/assignees/:user_id", managerTaskHandler.RemoveTaskAssignee)

	authed.GET("/manager/reports/task/:id", reportHandler.TaskReport)
	authed.GET("/manager/reports/project/:id", reportHandler.ProjectReport)
	authed.GET("/manager/reports/user/:id", reportHandler.UserReport)

	return &handlerTestEnv{
		db:          db,
		router:      router,
		tokens:      tokens,
		userRepo:    userRepo,
		refRepo:     refRepo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		authService: authService,
	}
}

// createUser inserts a user directly and returns it with a valid token.
func (env *handlerTestEnv) createUser(t *testing.T, username string, role models.RoleName) (*models.User, string) {
	t.Helper()

	roleRow, err := env.refRepo.FindRoleByName(role)
	require.NoError(t, err)

	user := &models.User{
		Username:       username,
		HashedPassword: "hashed",
		FirstName:      "Иван",
		LastName:       "Иванов",
		RoleID:         roleRow.ID,
	}
	require.NoError(t, env.db.Create(user).Error)

	loaded, err := env.userRepo.FindByID(user.ID)
	require.NoError(t, err)

	token, err := env.tokens.Generate(loaded.ID, role)
	require.NoError(t, err)
	return loaded, token
}

func (env *handlerTestEnv) createProject(t *testing.T, title string) *models.Project {
	t.Helper()
	project := &models.Project{Title: title}
	require.NoError(t, env.db.Create(project).Error)
	return project
}

func (env *handlerTestEnv) createTask(t *testing.T, title string, projectID *uint64) *models.Task {
	t.Helper()
	task := &models.Task{Title: title, ProjectID: projectID}
	require.NoError(t, env.db.Create(task).Error)
	return task
}

func (env *handlerTestEnv) addMember(t *testing.T, projectID, userID uint64) {
	t.Helper()
	require.NoError(t, env.projectRepo.AddMember(&models.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
	}))
}

func (env *handlerTestEnv) addAssignment(t *testing.T, taskID, userID uint64) {
	t.Helper()
	require.NoError(t, env.taskRepo.AddAssignment(&models.TaskAssignment{
		TaskID: taskID,
		UserID: userID,
	}))
}

// request performs an HTTP call against the test router.
func (env *handlerTestEnv) request(t *testing.T, method, url string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}
