package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/reports"
)

func newReportService(env serviceTestEnv) *ReportService {
	return NewReportService(env.taskRepo, env.projectRepo, env.userRepo, env.access)
}

func TestReportService_TaskReport(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newReportService(env)

	manager := env.createUser(t, "manager", models.RoleManager)
	dev := env.createUser(t, "dev", models.RoleEmployee)
	project := env.createProject(t, "Внутренний портал")
	task := env.createTask(t, "Настроить CI", &project.ID)
	env.addAssignment(t, task.ID, dev.ID)

	doc, err := svc.TaskReport(manager, task.ID)
	require.NoError(t, err)

	expected := fmt.Sprintf("Report_task_Настроить CI_%s.xlsx", time.Now().Format("2006-01-02"))
	require.Equal(t, expected, doc.Filename)
	require.Equal(t, "Отчёт по задаче", doc.SheetTitle)
	require.Len(t, doc.Sections, 3)

	// Bound task renders the project block, not its placeholder.
	require.Equal(t, "Проект задачи", doc.Sections[1].Title)
	require.NotEmpty(t, doc.Sections[1].Rows)

	require.Equal(t, []string{"Иван", "Иванов", reports.PatronymicAbsent, reports.PositionUnknown},
		doc.Sections[2].Rows[0])
}

func TestReportService_TaskReportUnboundTask(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newReportService(env)

	manager := env.createUser(t, "manager", models.RoleManager)
	task := env.createTask(t, "Настроить CI", nil)

	doc, err := svc.TaskReport(manager, task.ID)
	require.NoError(t, err)

	projectSection := doc.Sections[1]
	require.Empty(t, projectSection.Rows)
	require.Equal(t, "Задача не привязана к проекту", projectSection.Empty)

	assigneeSection := doc.Sections[2]
	require.Empty(t, assigneeSection.Rows)
	require.Equal(t, "Нет участников задачи", assigneeSection.Empty)
}

func TestReportService_ProjectReportEmptyCollections(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newReportService(env)

	manager := env.createUser(t, "manager", models.RoleManager)
	project := env.createProject(t, "Внутренний портал")

	doc, err := svc.ProjectReport(manager, project.ID)
	require.NoError(t, err)

	require.Equal(t, "Отчёт по проекту", doc.SheetTitle)
	require.Equal(t, "Нет участников проекта", doc.Sections[1].Empty)
	require.Empty(t, doc.Sections[1].Rows)
	require.Equal(t, "Нет задач внутри проекта", doc.Sections[2].Empty)
	require.Empty(t, doc.Sections[2].Rows)

	// Dates absent on the project show the textual placeholder.
	require.Equal(t, []string{"Дата начала", reports.NotSpecified}, doc.Sections[0].Rows[2])
}

func TestReportService_UserReport(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newReportService(env)

	manager := env.createUser(t, "manager", models.RoleManager)
	dev := env.createUser(t, "dev", models.RoleEmployee)
	project := env.createProject(t, "Внутренний портал")
	task := env.createTask(t, "Настроить CI", &project.ID)
	env.addMember(t, project.ID, dev.ID)
	env.addAssignment(t, task.ID, dev.ID)

	doc, err := svc.UserReport(manager, dev.ID)
	require.NoError(t, err)

	require.Equal(t, "Отчёт по пользователю", doc.SheetTitle)
	require.Len(t, doc.Sections[1].Rows, 1)
	require.Equal(t, "Настроить CI", doc.Sections[1].Rows[0][0])
	require.Len(t, doc.Sections[2].Rows, 1)
	require.Equal(t, "Внутренний портал", doc.Sections[2].Rows[0][0])
}

func TestReportService_AccessAndExistence(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newReportService(env)

	manager := env.createUser(t, "manager", models.RoleManager)
	employee := env.createUser(t, "employee", models.RoleEmployee)

	_, err := svc.TaskReport(employee, 9999)
	require.ErrorIs(t, err, ErrInsufficientRole)

	_, err = svc.TaskReport(manager, 9999)
	require.ErrorIs(t, err, ErrTaskNotFound)
	_, err = svc.ProjectReport(manager, 9999)
	require.ErrorIs(t, err, ErrProjectNotFound)
	_, err = svc.UserReport(manager, 9999)
	require.ErrorIs(t, err, ErrUserNotFound)
}
