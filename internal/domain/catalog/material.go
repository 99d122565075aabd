package catalog

import "time"

type Material struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"column:name;not null;uniqueIndex" json:"name"`
	DisplayName string       `gorm:"column:display_name;not null" json:"displayName"`
	Type        MaterialType `gorm:"column:type;type:varchar(32);not null;index" json:"type"`
	CareNotes   string       `gorm:"column:care_notes" json:"careNotes"`
	Description string       `gorm:"column:description" json:"description"`
	CommonUses  string       `gorm:"column:common_uses" json:"commonUses"`
	Icon        string       `gorm:"column:icon;not null;default:'material'" json:"icon"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}

func (Material) TableName() string { return "materials" }
