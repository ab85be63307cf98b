package models

import "time"

type TaskStatus struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`

	// Relations
	Tasks []Task `gorm:"foreignKey:StatusID" json:"-"`
}

type TaskPriority struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`

	// Relations
	Tasks []Task `gorm:"foreignKey:PriorityID" json:"-"`
}

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date"`
	// A task may exist outside any project.
	ProjectID  *uint64   `json:"project_id"`
	StatusID   uint64    `gorm:"not null;default:1" json:"status_id"`
	PriorityID uint64    `gorm:"not null;default:1" json:"priority_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Project     *Project         `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
	Status      TaskStatus       `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Priority    TaskPriority     `gorm:"foreignKey:PriorityID" json:"priority,omitempty"`
	Assignments []TaskAssignment `gorm:"foreignKey:TaskID" json:"assignments,omitempty"`
}
