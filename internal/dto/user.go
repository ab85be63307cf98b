package dto

import (
	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/utils"
)

// UserDTO represents a user in API responses. Role and position render
// as names; a user without a position keeps an explicit null.
type UserDTO struct {
	ID         uint64  `json:"id"`
	Username   string  `json:"username"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Patronymic *string `json:"patronymic"`
	Role       string  `json:"role"`
	Position   *string `json:"position"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserDTO                `json:"users"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToUserDTO converts a User model to UserDTO. Role and Position must be
// loaded on the model.
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:         user.ID,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Patronymic: user.Patronymic,
		Role:       string(user.Role.Name),
	}
	if user.Position != nil {
		name := user.Position.Name
		dto.Position = &name
	}
	return dto
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}
	return items
}

// MembersToUserDTOs converts membership links to the views of the linked
// users, resolving role and position through the User row
func MembersToUserDTOs(members []models.ProjectMember) []UserDTO {
	items := make([]UserDTO, len(members))
	for i, member := range members {
		items[i] = ToUserDTO(member.User)
	}
	return items
}

// AssigneesToUserDTOs converts assignment links to the views of the
// assigned users
func AssigneesToUserDTOs(assignments []models.TaskAssignment) []UserDTO {
	items := make([]UserDTO, len(assignments))
	for i, assignment := range assignments {
		items[i] = ToUserDTO(assignment.User)
	}
	return items
}
