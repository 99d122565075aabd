package catalog

import (
	"gorm.io/gorm"

	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/platform/dbctx"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
)

type StainRepo interface {
	Create(dbc dbctx.Context, stains []*types.Stain) ([]*types.Stain, error)
	GetByIDs(dbc dbctx.Context, ids []uint) ([]*types.Stain, error)
	GetByNames(dbc dbctx.Context, names []string) ([]*types.Stain, error)
	List(dbc dbctx.Context) ([]*types.Stain, error)
}

type stainRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStainRepo(db *gorm.DB, baseLog *logger.Logger) StainRepo {
	repoLog := baseLog.With("repo", "StainRepo")
	return &stainRepo{db: db, log: repoLog}
}

func (r *stainRepo) Create(dbc dbctx.Context, stains []*types.Stain) ([]*types.Stain, error) {
	if len(stains) == 0 {
		return []*types.Stain{}, nil
	}
	if err := dbc.DB(r.db).Create(&stains).Error; err != nil {
		return nil, err
	}
	return stains, nil
}

func (r *stainRepo) GetByIDs(dbc dbctx.Context, ids []uint) ([]*types.Stain, error) {
	var results []*types.Stain
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

func (r *stainRepo) GetByNames(dbc dbctx.Context, names []string) ([]*types.Stain, error) {
	var results []*types.Stain
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

func (r *stainRepo) List(dbc dbctx.Context) ([]*types.Stain, error) {
	var results []*types.Stain
	if err := dbc.DB(r.db).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
