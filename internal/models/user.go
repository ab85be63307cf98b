package models

import "time"

type User struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Username       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	HashedPassword string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName      string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName       string    `gorm:"type:varchar(255);not null" json:"last_name"`
	Patronymic     *string   `gorm:"type:varchar(255)" json:"patronymic"`
	RoleID         uint64    `gorm:"not null;default:1" json:"role_id"`
	PositionID     *uint64   `json:"position_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Role        Role             `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Position    *Position        `gorm:"foreignKey:PositionID;constraint:OnDelete:SET NULL" json:"position,omitempty"`
	Assignments []TaskAssignment `gorm:"foreignKey:UserID" json:"-"`
	Memberships []ProjectMember  `gorm:"foreignKey:UserID" json:"-"`
}

// IsManager reports whether the user holds the manager role. The Role
// relation must be loaded.
func (u *User) IsManager() bool {
	return u.Role.Name == RoleManager
}
