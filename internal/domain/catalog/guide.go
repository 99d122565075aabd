package catalog

import (
	"time"

	"gorm.io/datatypes"
)

// Guide is the authored record for one stain/material pair. At most one row exists per pair
// (idx_guide_pair). Generated page content is derived from it on read and never stored.
type Guide struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	StainID       uint                        `gorm:"column:stain_id;not null;uniqueIndex:idx_guide_pair,priority:1" json:"stainId"`
	Stain         *Stain                      `gorm:"foreignKey:StainID;references:ID;constraint:OnDelete:CASCADE" json:"stain,omitempty"`
	MaterialID    uint                        `gorm:"column:material_id;not null;uniqueIndex:idx_guide_pair,priority:2;index:idx_guide_material" json:"materialId"`
	Material      *Material                   `gorm:"foreignKey:MaterialID;references:ID;constraint:OnDelete:CASCADE" json:"material,omitempty"`
	PreTreatment  string                      `gorm:"column:pre_treatment;type:text;not null" json:"preTreatment"`
	Products      datatypes.JSONSlice[string] `gorm:"column:products;not null" json:"products"`
	WashMethod    string                      `gorm:"column:wash_method;type:text;not null" json:"washMethod"`
	Warnings      datatypes.JSONSlice[string] `gorm:"column:warnings;not null" json:"warnings"`
	Effectiveness Effectiveness               `gorm:"column:effectiveness;type:varchar(16);not null" json:"effectiveness"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime;index" json:"lastUpdated"`
}

func (Guide) TableName() string { return "stain_removal_guides" }

// Slug returns the "<stain>/<material>" path fragment when both associations are loaded.
func (g *Guide) Slug() string {
	if g == nil || g.Stain == nil || g.Material == nil {
		return ""
	}
	return g.Stain.Name + "/" + g.Material.Name
}
