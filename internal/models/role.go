package models

// RoleName is the closed set of roles the authorization layer branches on.
type RoleName string

const (
	RoleEmployee RoleName = "Сотрудник"
	RoleManager  RoleName = "Менеджер"
)

type Role struct {
	ID   uint64   `gorm:"primarykey" json:"id"`
	Name RoleName `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`

	// Relations
	Users []User `gorm:"foreignKey:RoleID" json:"-"`
}
