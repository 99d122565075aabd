package catalog

import "time"

type Stain struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"column:name;not null;uniqueIndex" json:"name"`
	DisplayName string        `gorm:"column:display_name;not null" json:"displayName"`
	Color       string        `gorm:"column:color;not null" json:"color"`
	Category    StainCategory `gorm:"column:category;type:varchar(32);not null;index" json:"category"`
	Description string        `gorm:"column:description" json:"description,omitempty"`
	Icon        string        `gorm:"column:icon;not null;default:'stain'" json:"icon"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}

func (Stain) TableName() string { return "stains" }
