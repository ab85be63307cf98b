package models

// ProjectMember links a user to a project. Membership is what grants an
// employee read access to the project surface.
type ProjectMember struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	UserID    uint64 `gorm:"not null;uniqueIndex:idx_project_members_user_project" json:"user_id"`
	ProjectID uint64 `gorm:"not null;uniqueIndex:idx_project_members_user_project" json:"project_id"`

	// Relations
	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}
