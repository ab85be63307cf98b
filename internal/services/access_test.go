package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teamtrack/project-management-api/internal/models"
)

func TestAccessEvaluator_RequireManager(t *testing.T) {
	env := setupServiceTestEnv(t)

	manager := env.createUser(t, "manager", models.RoleManager)
	employee := env.createUser(t, "employee", models.RoleEmployee)

	require.NoError(t, env.access.RequireManager(manager))
	require.ErrorIs(t, env.access.RequireManager(employee), ErrInsufficientRole)
}

func TestAccessEvaluator_RequireNotSelf(t *testing.T) {
	env := setupServiceTestEnv(t)

	manager := env.createUser(t, "manager", models.RoleManager)
	other := env.createUser(t, "other", models.RoleEmployee)

	require.ErrorIs(t, env.access.RequireNotSelf(manager, manager.ID), ErrSelfModification)
	require.NoError(t, env.access.RequireNotSelf(manager, other.ID))
}

func TestAccessEvaluator_RequireProjectMember(t *testing.T) {
	env := setupServiceTestEnv(t)

	member := env.createUser(t, "member", models.RoleEmployee)
	outsider := env.createUser(t, "outsider", models.RoleEmployee)
	project := env.createProject(t, "Внутренний портал")
	env.addMember(t, project.ID, member.ID)

	got, err := env.access.RequireProjectMember(member, project.ID)
	require.NoError(t, err)
	require.Equal(t, project.ID, got.ID)

	_, err = env.access.RequireProjectMember(outsider, project.ID)
	require.ErrorIs(t, err, ErrNotProjectMember)

	// A missing project reports not-found before membership is consulted.
	_, err = env.access.RequireProjectMember(outsider, project.ID+100)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestAccessEvaluator_RequireTaskParticipant(t *testing.T) {
	env := setupServiceTestEnv(t)

	assignee := env.createUser(t, "assignee", models.RoleEmployee)
	outsider := env.createUser(t, "outsider", models.RoleEmployee)
	task := env.createTask(t, "Подготовить релиз", nil)
	env.addAssignment(t, task.ID, assignee.ID)

	got, err := env.access.RequireTaskParticipant(assignee, task.ID)
	require.NoError(t, err)
	require.Equal(t, task.ID, got.ID)

	_, err = env.access.RequireTaskParticipant(outsider, task.ID)
	require.ErrorIs(t, err, ErrNotTaskParticipant)

	_, err = env.access.RequireTaskParticipant(outsider, task.ID+100)
	require.ErrorIs(t, err, ErrTaskNotFound)
}
