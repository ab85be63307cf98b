package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/teamtrack/project-management-api/internal/database"
	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/repository"
)

type serviceTestEnv struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	refRepo     repository.ReferenceRepository
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	tokenRepo   repository.TokenRepository
	access      *AccessEvaluator
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	return serviceTestEnv{
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		refRepo:     repository.NewReferenceRepository(db),
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		tokenRepo:   repository.NewTokenRepository(db),
		access:      NewAccessEvaluator(projectRepo, taskRepo),
	}
}

// createUser inserts a user with the given role and returns it with the
// role relation loaded.
func (env serviceTestEnv) createUser(t *testing.T, username string, role models.RoleName) *models.User {
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
	return loaded
}

func (env serviceTestEnv) createProject(t *testing.T, title string) *models.Project {
	t.Helper()

	project := &models.Project{Title: title}
	require.NoError(t, env.db.Create(project).Error)

	loaded, err := env.projectRepo.FindByID(project.ID)
	require.NoError(t, err)
	return loaded
}

func (env serviceTestEnv) createTask(t *testing.T, title string, projectID *uint64) *models.Task {
	t.Helper()

	task := &models.Task{Title: title, ProjectID: projectID}
	require.NoError(t, env.db.Create(task).Error)

	loaded, err := env.taskRepo.FindByID(task.ID)
	require.NoError(t, err)
	return loaded
}

func (env serviceTestEnv) addMember(t *testing.T, projectID, userID uint64) {
	t.Helper()
	require.NoError(t, env.projectRepo.AddMember(&models.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
	}))
}

func (env serviceTestEnv) addAssignment(t *testing.T, taskID, userID uint64) {
	t.Helper()
	require.NoError(t, env.taskRepo.AddAssignment(&models.TaskAssignment{
		TaskID: taskID,
		UserID: userID,
	}))
}
