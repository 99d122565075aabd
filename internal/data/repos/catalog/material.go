package catalog

import (
	"gorm.io/gorm"

	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/platform/dbctx"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
)

type MaterialRepo interface {
	Create(dbc dbctx.Context, materials []*types.Material) ([]*types.Material, error)
	GetByIDs(dbc dbctx.Context, ids []uint) ([]*types.Material, error)
	GetByNames(dbc dbctx.Context, names []string) ([]*types.Material, error)
	List(dbc dbctx.Context) ([]*types.Material, error)
}

type materialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMaterialRepo(db *gorm.DB, baseLog *logger.Logger) MaterialRepo {
	repoLog := baseLog.With("repo", "MaterialRepo")
	return &materialRepo{db: db, log: repoLog}
}

func (r *materialRepo) Create(dbc dbctx.Context, materials []*types.Material) ([]*types.Material, error) {
	if len(materials) == 0 {
		return []*types.Material{}, nil
	}
	if err := dbc.DB(r.db).Create(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *materialRepo) GetByIDs(dbc dbctx.Context, ids []uint) ([]*types.Material, error) {
	var results []*types.Material
	if len(ids) == 0 {
		return results, nil
	}
	if err := dbc.DB(r.db).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *materialRepo) GetByNames(dbc dbctx.Context, names []string) ([]*types.Material, error) {
	var results []*types.Material
	if len(names) == 0 {
		return results, nil
	}
	if err := dbc.DB(r.db).
		Where("name IN ?", names).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *materialRepo) List(dbc dbctx.Context) ([]*types.Material, error) {
	var results []*types.Material
	if err := dbc.DB(r.db).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
