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

func TestProjectHandler_ListMyProjects(t *testing.T) {
	env := setupHandlerTestEnv(t)

	dev, token := env.createUser(t, "dev", models.RoleEmployee)
	mine := env.createProject(t, "Внутренний портал")
	env.createProject(t, "Чужой проект")
	env.addMember(t, mine.ID, dev.ID)

	w := env.request(t, http.MethodGet, "/api/v1/projects", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var projects []dto.ProjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	require.Equal(t, "Внутренний портал", projects[0].Title)
	require.Equal(t, "Новый", projects[0].Status)
	require.Nil(t, projects[0].StartDate)
}

func TestProjectHandler_MembershipGate(t *testing.T) {
	env := setupHandlerTestEnv(t)

	dev, memberToken := env.createUser(t, "dev", models.RoleEmployee)
	_, outsiderToken := env.createUser(t, "outsider", models.RoleEmployee)
	project := env.createProject(t, "Внутренний портал")
	env.addMember(t, project.ID, dev.ID)

	url := fmt.Sprintf("/api/v1/projects/%d", project.ID)

	w := env.request(t, http.MethodGet, url, nil, memberToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, url, nil, outsiderToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	// A missing project is 404 for everyone, member or not.
	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/projects/%d", project.ID+100), nil, outsiderToken)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskHandler_NullProjectSerialization(t *testing.T) {
	env := setupHandlerTestEnv(t)

	dev, token := env.createUser(t, "dev", models.RoleEmployee)
	task := env.createTask(t, "Обновить документацию", nil)
	env.addAssignment(t, task.ID, dev.ID)

	w := env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/tasks/%d", task.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	// The project field must be present and explicitly null.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	project, exists := raw["project"]
	require.True(t, exists)
	require.Equal(t, "null", string(project))
}

func TestTaskHandler_ChangeStatus(t *testing.T) {
	env := setupHandlerTestEnv(t)

	dev, token := env.createUser(t, "dev", models.RoleEmployee)
	_, outsiderToken := env.createUser(t, "outsider", models.RoleEmployee)
	task := env.createTask(t, "Настроить CI", nil)
	env.addAssignment(t, task.ID, dev.ID)

	url := fmt.Sprintf("/api/v1/tasks/%d/status", task.ID)

	w := env.request(t, http.MethodPatch, url, map[string]uint64{"status_id": 2}, token)
	require.Equal(t, http.StatusOK, w.Code)

	get := env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/tasks/%d", task.ID), nil, token)
	var updated dto.TaskDTO
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &updated))
	require.Equal(t, "В работе", updated.Status)

	w = env.request(t, http.MethodPatch, url, map[string]uint64{"status_id": 2}, outsiderToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(t, http.MethodPatch, url, map[string]uint64{"status_id": 999}, token)
	require.Equal(t, http.StatusNotFound, w.Code)
}
