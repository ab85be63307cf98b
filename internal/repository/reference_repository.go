package repository

import (
	"gorm.io/gorm"

	"github.com/teamtrack/project-management-api/internal/models"
)

// GormReferenceRepository is a GORM implementation of ReferenceRepository
type GormReferenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository creates a new ReferenceRepository
func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &GormReferenceRepository{db: db}
}

func (r *GormReferenceRepository) ListRoles() ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *GormReferenceRepository) ListPositions() ([]models.Position, error) {
	var positions []models.Position
	if err := r.db.Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

func (r *GormReferenceRepository) ListTaskStatuses() ([]models.TaskStatus, error) {
	var statuses []models.TaskStatus
	if err := r.db.Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *GormReferenceRepository) ListTaskPriorities() ([]models.TaskPriority, error) {
	var priorities []models.TaskPriority
	if err := r.db.Find(&priorities).Error; err != nil {
		return nil, err
	}
	return priorities, nil
}

func (r *GormReferenceRepository) ListProjectStatuses() ([]models.ProjectStatus, error) {
	var statuses []models.ProjectStatus
	if err := r.db.Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *GormReferenceRepository) FindRoleByID(id uint64) (*models.Role, error) {
	var role models.Role
	if err := r.db.First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *GormReferenceRepository) FindRoleByName(name models.RoleName) (*models.Role, error) {
	var role models.Role
	if err := r.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *GormReferenceRepository) FindPositionByID(id uint64) (*models.Position, error) {
	var position models.Position
	if err := r.db.First(&position, id).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *GormReferenceRepository) FindTaskStatusByID(id uint64) (*models.TaskStatus, error) {
	var status models.TaskStatus
	if err := r.db.First(&status, id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *GormReferenceRepository) FindTaskPriorityByID(id uint64) (*models.TaskPriority, error) {
	var priority models.TaskPriority
	if err := r.db.First(&priority, id).Error; err != nil {
		return nil, err
	}
	return &priority, nil
}

func (r *GormReferenceRepository) FindProjectStatusByID(id uint64) (*models.ProjectStatus, error) {
	var status models.ProjectStatus
	if err := r.db.First(&status, id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}
