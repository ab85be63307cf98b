package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teamtrack/project-management-api/internal/models"
)

func newManagerTaskService(env serviceTestEnv) *ManagerTaskService {
	return NewManagerTaskService(env.taskRepo, env.projectRepo, env.userRepo, env.refRepo, env.access)
}

func TestManagerTaskService_CreateTaskDefaults(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newManagerTaskService(env)

	manager := env.createUser(t, "manager", models.RoleManager)

	task, err := svc.CreateTask(manager, CreateTaskInput{Title: "Настроить CI"})
	require.NoError(t, err)

	loaded, err := env.taskRepo.FindByID(task.ID)
	require.NoError(t, err)
	require.Equal(t, "Новая", loaded.Status.Name)
	require.Equal(t, "Низкий", loaded.Priority.Name)
	require.Nil(t, loaded.ProjectID)
}

func TestManagerTaskService_UpdateTaskBindsProject(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newManagerTaskService(env)

	manager := env.createUser(t, "manager", models.RoleManager)
	project := env.createProject(t, "Внутренний портал")
	task := env.createTask(t, "Настроить CI", nil)

	err := svc.UpdateTask(manager, task.ID, UpdateTaskInput{
		Title:      "Настроить CI",
		StatusID:   2,
		PriorityID: 3,
		ProjectID:  &project.ID,
	})
	require.NoError(t, err)

	loaded, err := env.taskRepo.FindByID(task.ID)
	require.NoError(t, err)
	require.Equal(t, "В работе", loaded.Status.Name)
	require.Equal(t, "Высокий", loaded.Priority.Name)
	require.NotNil(t, loaded.ProjectID)
	require.Equal(t, project.ID, *loaded.ProjectID)
}

func TestManagerTaskService_UpdateTaskValidatesReferences(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newManagerTaskService(env)

	manager := env.createUser(t, "manager", models.RoleManager)
	task := env.createTask(t, "Настроить CI", nil)

	err := svc.UpdateTask(manager, task.ID, UpdateTaskInput{
		Title:      "Настроить CI",
		StatusID:   999,
		PriorityID: 1,
	})
	require.ErrorIs(t, err, ErrTaskStatusNotFound)

	err = svc.UpdateTask(manager, task.ID, UpdateTaskInput{
		Title:      "Настроить CI",
		StatusID:   1,
		PriorityID: 999,
	})
	require.ErrorIs(t, err, ErrTaskPriorityNotFound)

	missing := uint64(999)
	err = svc.UpdateTask(manager, task.ID, UpdateTaskInput{
		Title:      "Настроить CI",
		StatusID:   1,
		PriorityID: 1,
		ProjectID:  &missing,
	})
	require.ErrorIs(t, err, ErrProjectNotFound)

	// Nothing should have stuck from the rejected updates.
	loaded, err := env.taskRepo.FindByID(task.ID)
	require.NoError(t, err)
	require.Equal(t, "Новая", loaded.Status.Name)
	require.Nil(t, loaded.ProjectID)
}

func TestManagerTaskService_AssignmentLinks(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newManagerTaskService(env)

	manager := env.createUser(t, "manager", models.RoleManager)
	dev := env.createUser(t, "dev", models.RoleEmployee)
	task := env.createTask(t, "Настроить CI", nil)

	require.NoError(t, svc.AddTaskAssignee(manager, task.ID, dev.ID))
	require.ErrorIs(t, svc.AddTaskAssignee(manager, task.ID, dev.ID), ErrAlreadyAssigned)

	assignees, err := svc.GetTaskAssignees(manager, task.ID)
	require.NoError(t, err)
	require.Len(t, assignees, 1)
	require.Equal(t, dev.ID, assignees[0].User.ID)

	require.NoError(t, svc.RemoveTaskAssignee(manager, task.ID, dev.ID))
	require.ErrorIs(t, svc.RemoveTaskAssignee(manager, task.ID, dev.ID), ErrAssignmentNotFound)
}

func TestManagerTaskService_DeleteTaskCascades(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newManagerTaskService(env)

	manager := env.createUser(t, "manager", models.RoleManager)
	dev := env.createUser(t, "dev", models.RoleEmployee)
	task := env.createTask(t, "Настроить CI", nil)
	env.addAssignment(t, task.ID, dev.ID)

	require.NoError(t, svc.DeleteTask(manager, task.ID))

	_, err := env.taskRepo.FindByID(task.ID)
	require.Error(t, err)
	_, err = env.taskRepo.FindAssignment(task.ID, dev.ID)
	require.Error(t, err)
}

func TestManagerTaskService_RoleGate(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newManagerTaskService(env)

	employee := env.createUser(t, "employee", models.RoleEmployee)

	_, err := svc.CreateTask(employee, CreateTaskInput{Title: "Настроить CI"})
	require.ErrorIs(t, err, ErrInsufficientRole)

	require.ErrorIs(t, svc.DeleteTask(employee, 9999), ErrInsufficientRole)
}
