package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/repository"
	"github.com/teamtrack/project-management-api/internal/utils"
)

// ManagerUserService administers user accounts. The role gate runs before
// any other check on every operation.
type ManagerUserService struct {
	userRepo    repository.UserRepository
	refRepo     repository.ReferenceRepository
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	access      *AccessEvaluator
}

// NewManagerUserService creates a new ManagerUserService.
func NewManagerUserService(
	userRepo repository.UserRepository,
	refRepo repository.ReferenceRepository,
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	access *AccessEvaluator,
) *ManagerUserService {
	return &ManagerUserService{
		userRepo:    userRepo,
		refRepo:     refRepo,
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		access:      access,
	}
}

// CreateUserInput represents the payload for creating an account.
type CreateUserInput struct {
	Username   string
	Password   string
	FirstName  string
	LastName   string
	Patronymic *string
	PositionID *uint64
}

// UpdateUserInput represents the payload for updating an account.
type UpdateUserInput struct {
	FirstName  string
	LastName   string
	Patronymic *string
	RoleID     uint64
	PositionID *uint64
}

// ListUsers returns all users, paginated.
func (s *ManagerUserService) ListUsers(actor *models.User, params utils.PaginationParams) ([]models.User, int64, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, 0, err
	}

	users, total, err := s.userRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// GetUser returns a single user by id.
func (s *ManagerUserService) GetUser(actor *models.User, userID uint64) (*models.User, error) {
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
	return user, nil
}

// CreateUser creates an employee account. New accounts always start with
// the default employee role; promotion happens through UpdateUser.
func (s *ManagerUserService) CreateUser(actor *models.User, input CreateUserInput) (*models.User, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByUsername(input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if input.PositionID != nil {
		if _, err := s.refRepo.FindPositionByID(*input.PositionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPositionNotFound
			}
			return nil, fmt.Errorf("failed to find position: %w", err)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:       input.Username,
		HashedPassword: string(hashedPassword),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Patronymic:     input.Patronymic,
		PositionID:     input.PositionID,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Reload so the defaulted role and the position are populated.
	created, err := s.userRepo.FindByID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return created, nil
}

// UpdateUser updates name, role and position of an account. Managers may
// not update their own row through this surface.
func (s *ManagerUserService) UpdateUser(actor *models.User, userID uint64, input UpdateUserInput) error {
	if err := s.access.RequireManager(actor); err != nil {
		return err
	}
	if err := s.access.RequireNotSelf(actor, userID); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if input.PositionID != nil {
		if _, err := s.refRepo.FindPositionByID(*input.PositionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPositionNotFound
			}
			return fmt.Errorf("failed to find position: %w", err)
		}
	}
	if _, err := s.refRepo.FindRoleByID(input.RoleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return fmt.Errorf("failed to find role: %w", err)
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Patronymic = input.Patronymic
	user.RoleID = input.RoleID
	user.PositionID = input.PositionID
	// Avoid saving a stale association over the new foreign keys.
	user.Role = models.Role{}
	user.Position = nil

	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// DeleteUser removes an account. Managers may not delete themselves.
func (s *ManagerUserService) DeleteUser(actor *models.User, userID uint64) error {
	if err := s.access.RequireManager(actor); err != nil {
		return err
	}
	if err := s.access.RequireNotSelf(actor, userID); err != nil {
		return err
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// GetUserTasks returns the tasks assigned to a user, with project
// summaries attached.
func (s *ManagerUserService) GetUserTasks(actor *models.User, userID uint64) ([]models.TaskAssignment, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	assignments, err := s.taskRepo.ListAssignmentsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// GetUserProjects returns the projects a user belongs to.
func (s *ManagerUserService) GetUserProjects(actor *models.User, userID uint64) ([]models.ProjectMember, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	memberships, err := s.projectRepo.ListMembershipsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}
