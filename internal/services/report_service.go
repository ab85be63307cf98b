package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/reports"
	"github.com/teamtrack/project-management-api/internal/repository"
)

// ReportService assembles manager-only tabular summaries. Each report is
// a root entity block plus its related collections, with placeholder rows
// instead of empty tables.
type ReportService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	access      *AccessEvaluator
}

// NewReportService creates a new ReportService.
func NewReportService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	access *AccessEvaluator,
) *ReportService {
	return &ReportService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		access:      access,
	}
}

// TaskReport builds the report for a single task: its fields, its parent
// project (or an explicit placeholder) and its assignees.
func (s *ReportService) TaskReport(actor *models.User, taskID uint64) (*reports.Document, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	assignees, err := s.taskRepo.ListAssignees(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignees: %w", err)
	}

	taskSection := reports.Section{
		Title: "Задача",
		Col:   1, Row: 1, Width: 2,
		Rows: [][]string{
			{"Название задачи", task.Title},
			{"Описание", reports.Text(task.Description)},
			{"Дата начала", reports.FormatDate(task.StartDate)},
			{"Дата завершения", reports.FormatDate(task.DueDate)},
			{"Статус", task.Status.Name},
			{"Приоритет", task.Priority.Name},
		},
	}

	projectSection := reports.Section{
		Title: "Проект задачи",
		Col:   4, Row: 1, Width: 2,
		Empty: "Задача не привязана к проекту",
	}
	if task.Project != nil {
		projectSection.Rows = [][]string{
			{"Название проекта", task.Project.Title},
			{"Описание", reports.Text(task.Project.Description)},
			{"Дата начала", reports.FormatDate(task.Project.StartDate)},
			{"Дата завершения", reports.FormatDate(task.Project.DueDate)},
			{"Статус", task.Project.Status.Name},
		}
	}

	assigneeSection := reports.Section{
		Title: "Участники задачи",
		Col:   1, Row: 9, Width: 4,
		Headers: []string{"Имя", "Фамилия", "Отчество", "Должность"},
		Rows:    userRows(assignees),
		Empty:   "Нет участников задачи",
	}

	return &reports.Document{
		SheetTitle: "Отчёт по задаче",
		Filename:   fmt.Sprintf("Report_task_%s_%s.xlsx", task.Title, time.Now().Format("2006-01-02")),
		Sections:   []reports.Section{taskSection, projectSection, assigneeSection},
	}, nil
}

// ProjectReport builds the report for a project: its fields, its members
// and its tasks side by side.
func (s *ReportService) ProjectReport(actor *models.User, projectID uint64) (*reports.Document, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	members, err := s.projectRepo.ListMembers(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	tasks, err := s.projectRepo.ListTasks(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project tasks: %w", err)
	}

	projectSection := reports.Section{
		Title: "Проект",
		Col:   1, Row: 1, Width: 2,
		Rows: [][]string{
			{"Название проекта", project.Title},
			{"Описание", reports.Text(project.Description)},
			{"Дата начала", reports.FormatDate(project.StartDate)},
			{"Дата завершения", reports.FormatDate(project.DueDate)},
			{"Статус", project.Status.Name},
		},
	}

	memberRows := make([][]string, 0, len(members))
	for _, member := range members {
		memberRows = append(memberRows, userRow(member.User))
	}
	memberSection := reports.Section{
		Title: "Участники проекта",
		Col:   1, Row: 8, Width: 4,
		Headers: []string{"Имя", "Фамилия", "Отчество", "Должность"},
		Rows:    memberRows,
		Empty:   "Нет участников проекта",
	}

	taskRows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		taskRows = append(taskRows, []string{
			task.Title,
			reports.Text(task.Description),
			task.Status.Name,
			reports.FormatDate(task.StartDate),
			reports.FormatDate(task.DueDate),
			task.Priority.Name,
		})
	}
	taskSection := reports.Section{
		Title: "Задачи проекта",
		Col:   6, Row: 8, Width: 6,
		Headers: []string{"Название", "Описание", "Статус", "Дата начала", "Дата завершения", "Приоритет"},
		Rows:    taskRows,
		Empty:   "Нет задач внутри проекта",
	}

	return &reports.Document{
		SheetTitle: "Отчёт по проекту",
		Filename:   fmt.Sprintf("Report_project_%s_%s.xlsx", project.Title, time.Now().Format("2006-01-02")),
		Sections:   []reports.Section{projectSection, memberSection, taskSection},
	}, nil
}

// UserReport builds the report for a user: their fields, their assigned
// tasks and their projects side by side.
func (s *ReportService) UserReport(actor *models.User, userID uint64) (*reports.Document, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	assignments, err := s.taskRepo.ListAssignmentsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	memberships, err := s.projectRepo.ListMembershipsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	patronymic := reports.PatronymicAbsent
	if user.Patronymic != nil && *user.Patronymic != "" {
		patronymic = *user.Patronymic
	}
	position := reports.PositionUnknown
	if user.Position != nil {
		position = user.Position.Name
	}
	userSection := reports.Section{
		Title: "Пользователь",
		Col:   1, Row: 1, Width: 2,
		Rows: [][]string{
			{"Имя", user.FirstName},
			{"Фамилия", user.LastName},
			{"Отчество", patronymic},
			{"Должность", position},
		},
	}

	taskRows := make([][]string, 0, len(assignments))
	for _, assignment := range assignments {
		taskRows = append(taskRows, []string{
			assignment.Task.Title,
			assignment.Task.Status.Name,
			reports.FormatDate(assignment.Task.StartDate),
			reports.FormatDate(assignment.Task.DueDate),
		})
	}
	taskSection := reports.Section{
		Title: "Задачи пользователя",
		Col:   1, Row: 8, Width: 4,
		Headers: []string{"Название задачи", "Статус", "Дата начала", "Дата завершения"},
		Rows:    taskRows,
		Empty:   "Нет задач у пользователя",
	}

	projectRows := make([][]string, 0, len(memberships))
	for _, membership := range memberships {
		projectRows = append(projectRows, []string{
			membership.Project.Title,
			reports.Text(membership.Project.Description),
			reports.FormatDate(membership.Project.StartDate),
			reports.FormatDate(membership.Project.DueDate),
		})
	}
	projectSection := reports.Section{
		Title: "Проекты пользователя",
		Col:   6, Row: 8, Width: 4,
		Headers: []string{"Название проекта", "Описание", "Дата начала", "Дата завершения"},
		Rows:    projectRows,
		Empty:   "Нет проектов у пользователя",
	}

	return &reports.Document{
		SheetTitle: "Отчёт по пользователю",
		Filename:   fmt.Sprintf("Report_user_%s_%s_%s.xlsx", user.FirstName, user.LastName, time.Now().Format("2006-01-02")),
		Sections:   []reports.Section{userSection, taskSection, projectSection},
	}, nil
}

func userRows(assignments []models.TaskAssignment) [][]string {
	rows := make([][]string, 0, len(assignments))
	for _, assignment := range assignments {
		rows = append(rows, userRow(assignment.User))
	}
	return rows
}

// userRow resolves patronymic and position through the user row itself,
// so the report always reflects current state.
func userRow(user models.User) []string {
	patronymic := reports.PatronymicAbsent
	if user.Patronymic != nil && *user.Patronymic != "" {
		patronymic = *user.Patronymic
	}
	position := reports.PositionUnknown
	if user.Position != nil {
		position = user.Position.Name
	}
	return []string{user.FirstName, user.LastName, patronymic, position}
}
