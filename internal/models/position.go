package models

// Position is a descriptive organizational label. It grants no capabilities.
type Position struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`

	// Relations
	Users []User `gorm:"foreignKey:PositionID" json:"-"`
}
