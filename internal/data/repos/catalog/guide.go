package catalog

import (
	"gorm.io/gorm"

	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/platform/dbctx"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
)

type GuideRepo interface {
	Create(dbc dbctx.Context, guides []*types.Guide) ([]*types.Guide, error)
	GetByIDs(dbc dbctx.Context, ids []uint) ([]*types.Guide, error)
	// GetByPair returns zero or one guide; idx_guide_pair keeps pairs unique.
	GetByPair(dbc dbctx.Context, stainID, materialID uint) ([]*types.Guide, error)
	// List returns every guide with its stain and material preloaded.
	List(dbc dbctx.Context) ([]*types.Guide, error)
	// ListRelated returns guides sharing the stain or the material, excluding the pair itself.
	ListRelated(dbc dbctx.Context, stainID, materialID uint, limit int) ([]*types.Guide, error)
}

type guideRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGuideRepo(db *gorm.DB, baseLog *logger.Logger) GuideRepo {
	repoLog := baseLog.With("repo", "GuideRepo")
	return &guideRepo{db: db, log: repoLog}
}

func (r *guideRepo) Create(dbc dbctx.Context, guides []*types.Guide) ([]*types.Guide, error) {
	if len(guides) == 0 {
		return []*types.Guide{}, nil
	}
	if err := dbc.DB(r.db).Omit("Stain", "Material").Create(&guides).Error; err != nil {
		return nil, err
	}
	return guides, nil
}

func (r *guideRepo) GetByIDs(dbc dbctx.Context, ids []uint) ([]*types.Guide, error) {
	var results []*types.Guide
	if len(ids) == 0 {
		return results, nil
	}
	if err := dbc.DB(r.db).
		Preload("Stain").
		Preload("Material").
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *guideRepo) GetByPair(dbc dbctx.Context, stainID, materialID uint) ([]*types.Guide, error) {
	var results []*types.Guide
	if err := dbc.DB(r.db).
		Where("stain_id = ? AND material_id = ?", stainID, materialID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *guideRepo) List(dbc dbctx.Context) ([]*types.Guide, error) {
	var results []*types.Guide
	if err := dbc.DB(r.db).
		Preload("Stain").
		Preload("Material").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *guideRepo) ListRelated(dbc dbctx.Context, stainID, materialID uint, limit int) ([]*types.Guide, error) {
	var results []*types.Guide
	if limit <= 0 {
		return results, nil
	}
	if err := dbc.DB(r.db).
		Preload("Stain").
		Preload("Material").
		Where("(stain_id = ? OR material_id = ?) AND NOT (stain_id = ? AND material_id = ?)", stainID, materialID, stainID, materialID).
		Order("updated_at DESC").
		Order("id ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
