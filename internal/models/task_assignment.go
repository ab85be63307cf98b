package models

// TaskAssignment links a user to a task. Assigned users may view the task
// and change its status.
type TaskAssignment struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	UserID uint64 `gorm:"not null;uniqueIndex:idx_task_assignments_user_task" json:"user_id"`
	TaskID uint64 `gorm:"not null;uniqueIndex:idx_task_assignments_user_task" json:"task_id"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Task Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`
}
