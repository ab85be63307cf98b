package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teamtrack/project-management-api/internal/models"
)

func newTaskService(env serviceTestEnv) *TaskService {
	return NewTaskService(env.taskRepo, env.refRepo, env.access)
}

func TestTaskService_ListUserTasksScopedToActor(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newTaskService(env)

	dev := env.createUser(t, "dev", models.RoleEmployee)
	other := env.createUser(t, "other", models.RoleEmployee)

	mine := env.createTask(t, "Настроить CI", nil)
	theirs := env.createTask(t, "Обновить документацию", nil)
	env.addAssignment(t, mine.ID, dev.ID)
	env.addAssignment(t, theirs.ID, other.ID)

	assignments, err := svc.ListUserTasks(dev)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	require.Equal(t, mine.ID, assignments[0].Task.ID)
}

func TestTaskService_ChangeTaskStatus(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newTaskService(env)

	dev := env.createUser(t, "dev", models.RoleEmployee)
	outsider := env.createUser(t, "outsider", models.RoleEmployee)
	task := env.createTask(t, "Настроить CI", nil)
	env.addAssignment(t, task.ID, dev.ID)

	require.NoError(t, svc.ChangeTaskStatus(dev, task.ID, 2))

	loaded, err := env.taskRepo.FindByID(task.ID)
	require.NoError(t, err)
	require.Equal(t, "В работе", loaded.Status.Name)

	require.ErrorIs(t, svc.ChangeTaskStatus(outsider, task.ID, 3), ErrNotTaskParticipant)
	require.ErrorIs(t, svc.ChangeTaskStatus(dev, task.ID+100, 2), ErrTaskNotFound)
}

func TestTaskService_ChangeTaskStatusUnknownStatus(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newTaskService(env)

	dev := env.createUser(t, "dev", models.RoleEmployee)
	task := env.createTask(t, "Настроить CI", nil)
	env.addAssignment(t, task.ID, dev.ID)

	require.ErrorIs(t, svc.ChangeTaskStatus(dev, task.ID, 999), ErrTaskStatusNotFound)

	loaded, err := env.taskRepo.FindByID(task.ID)
	require.NoError(t, err)
	require.Equal(t, "Новая", loaded.Status.Name)
}

func TestTaskService_GetTaskIncludesProjectSummary(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newTaskService(env)

	dev := env.createUser(t, "dev", models.RoleEmployee)
	project := env.createProject(t, "Внутренний портал")
	bound := env.createTask(t, "Настроить CI", &project.ID)
	unbound := env.createTask(t, "Обновить документацию", nil)
	env.addAssignment(t, bound.ID, dev.ID)
	env.addAssignment(t, unbound.ID, dev.ID)

	got, err := svc.GetTask(dev, bound.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Project)
	require.Equal(t, "Внутренний портал", got.Project.Title)
	require.Equal(t, "Новый", got.Project.Status.Name)

	got, err = svc.GetTask(dev, unbound.ID)
	require.NoError(t, err)
	require.Nil(t, got.Project)
}
