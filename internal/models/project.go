package models

import "time"

type ProjectStatus struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`

	// Relations
	Projects []Project `gorm:"foreignKey:StatusID" json:"-"`
}

type Project struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date"`
	StatusID    uint64     `gorm:"not null;default:1" json:"status_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Status  ProjectStatus   `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Tasks   []Task          `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
	Members []ProjectMember `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
}
