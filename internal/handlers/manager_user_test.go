package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teamtrack/project-management-api/internal/dto"
	"github.com/teamtrack/project-management-api/internal/models"
)

func TestManagerUserHandler_CreateUser(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, managerToken := env.createUser(t, "manager", models.RoleManager)

	w := env.request(t, http.MethodPost, "/api/v1/manager/users", map[string]interface{}{
		"username":    "dev",
		"password":    "supersecret",
		"first_name":  "Олег",
		"last_name":   "Кузнецов",
		"position_id": 5,
	}, managerToken)
	require.Equal(t, http.StatusCreated, w.Code)

	var user dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.Equal(t, string(models.RoleEmployee), user.Role)
	require.NotNil(t, user.Position)
	require.Equal(t, "Программист", *user.Position)

	// The username is unique.
	w = env.request(t, http.MethodPost, "/api/v1/manager/users", map[string]interface{}{
		"username":   "dev",
		"password":   "supersecret",
		"first_name": "Олег",
		"last_name":  "Кузнецов",
	}, managerToken)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestManagerUserHandler_SelfGuard(t *testing.T) {
	env := setupHandlerTestEnv(t)
	manager, managerToken := env.createUser(t, "manager", models.RoleManager)

	w := env.request(t, http.MethodPut, fmt.Sprintf("/api/v1/manager/users/%d", manager.ID), map[string]interface{}{
		"first_name": "Анна",
		"last_name":  "Петрова",
		"role_id":    1,
	}, managerToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/manager/users/%d", manager.ID), nil, managerToken)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestManagerUserHandler_ForbiddenForEmployee(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, employeeToken := env.createUser(t, "employee", models.RoleEmployee)

	// Role gate answers before existence: a missing target still yields 403.
	w := env.request(t, http.MethodGet, "/api/v1/manager/users/9999", nil, employeeToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/manager/users", nil, employeeToken)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestManagerUserHandler_UserRelations(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, managerToken := env.createUser(t, "manager", models.RoleManager)
	dev, _ := env.createUser(t, "dev", models.RoleEmployee)

	project := env.createProject(t, "Внутренний портал")
	task := env.createTask(t, "Настроить CI", &project.ID)
	env.addMember(t, project.ID, dev.ID)
	env.addAssignment(t, task.ID, dev.ID)

	w := env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/manager/users/%d/tasks", dev.ID), nil, managerToken)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].Project)

	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/manager/users/%d/projects", dev.ID), nil, managerToken)
	require.Equal(t, http.StatusOK, w.Code)
	var projects []dto.ProjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	require.Equal(t, "Внутренний портал", projects[0].Title)
}
