package app

import (
	"gorm.io/gorm"

	"github.com/stainsolver/stainsolver-backend/internal/data/repos"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
)

type Repos struct {
	Stain    repos.StainRepo
	Material repos.MaterialRepo
	Guide    repos.GuideRepo
}

// NewRepos builds the catalog repositories over db.
func NewRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Stain:    repos.NewStainRepo(db, log),
		Material: repos.NewMaterialRepo(db, log),
		Guide:    repos.NewGuideRepo(db, log),
	}
}
