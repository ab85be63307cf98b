package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/teamtrack/project-management-api/internal/database"
	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/utils"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with status, priority and project loaded
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.
		Preload("Status").
		Preload("Priority").
		Preload("Project.Status").
		First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks with pagination and relations loaded
func (r *GormTaskRepository) List(params utils.PaginationParams) ([]models.Task, int64, error) {
	var total int64
	if err := r.db.Model(&models.Task{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	if err := r.db.
		Preload("Status").
		Preload("Priority").
		Preload("Project.Status").
		Scopes(database.Paginate(params)).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// Update persists changed task fields. Loaded associations are never
// written back, only the foreign keys.
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Omit(clause.Associations).Save(task).Error
}

// UpdateStatus changes only the task status reference
func (r *GormTaskRepository) UpdateStatus(taskID, statusID uint64) error {
	return r.db.Model(&models.Task{}).
		Where("id = ?", taskID).
		Update("status_id", statusID).Error
}

// Delete removes a task together with its assignments
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, id).Error
	})
}

// AddAssignment links a user to a task
func (r *GormTaskRepository) AddAssignment(assignment *models.TaskAssignment) error {
	return r.db.Create(assignment).Error
}

// RemoveAssignment unlinks a user from a task
func (r *GormTaskRepository) RemoveAssignment(taskID, userID uint64) error {
	return r.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&models.TaskAssignment{}).Error
}

// FindAssignment finds a specific assignment link
func (r *GormTaskRepository) FindAssignment(taskID, userID uint64) (*models.TaskAssignment, error) {
	var assignment models.TaskAssignment
	if err := r.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListAssignees lists a task's assignments with user details loaded
func (r *GormTaskRepository) ListAssignees(taskID uint64) ([]models.TaskAssignment, error) {
	var assignments []models.TaskAssignment
	if err := r.db.Preload("User.Role").Preload("User.Position").
		Where("task_id = ?", taskID).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListAssignmentsByUser lists a user's assignments with tasks loaded
func (r *GormTaskRepository) ListAssignmentsByUser(userID uint64) ([]models.TaskAssignment, error) {
	var assignments []models.TaskAssignment
	if err := r.db.
		Preload("Task.Status").
		Preload("Task.Priority").
		Preload("Task.Project.Status").
		Where("user_id = ?", userID).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}
