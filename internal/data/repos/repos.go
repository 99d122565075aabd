package repos

import (
	"gorm.io/gorm"

	"github.com/stainsolver/stainsolver-backend/internal/data/repos/catalog"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
)

type StainRepo = catalog.StainRepo
type MaterialRepo = catalog.MaterialRepo
type GuideRepo = catalog.GuideRepo

func NewStainRepo(db *gorm.DB, baseLog *logger.Logger) StainRepo {
	return catalog.NewStainRepo(db, baseLog)
}
func NewMaterialRepo(db *gorm.DB, baseLog *logger.Logger) MaterialRepo {
	return catalog.NewMaterialRepo(db, baseLog)
}
func NewGuideRepo(db *gorm.DB, baseLog *logger.Logger) GuideRepo {
	return catalog.NewGuideRepo(db, baseLog)
}
