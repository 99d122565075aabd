package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/stainsolver/stainsolver-backend/internal/data/repos"
	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/platform/apierr"
	"github.com/stainsolver/stainsolver-backend/internal/platform/dbctx"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
)

type CreateStainInput struct {
	Name        string              `json:"name" binding:"required,max=64"`
	DisplayName string              `json:"displayName" binding:"required,max=128"`
	Color       string              `json:"color" binding:"required,max=32"`
	Category    types.StainCategory `json:"category" binding:"required,oneof=beverage food oil ink dirt bodily_fluid makeup grass other"`
	Description string              `json:"description" binding:"max=2000"`
	Icon        string              `json:"icon" binding:"max=64"`
}

type CreateMaterialInput struct {
	Name        string             `json:"name" binding:"required,max=64"`
	DisplayName string             `json:"displayName" binding:"required,max=128"`
	Type        types.MaterialType `json:"type" binding:"required,oneof=natural synthetic leather upholstery hard_surface other"`
	CareNotes   string             `json:"careNotes" binding:"required,max=2000"`
	Description string             `json:"description" binding:"required,max=2000"`
	CommonUses  string             `json:"commonUses" binding:"required,max=2000"`
	Icon        string             `json:"icon" binding:"max=64"`
}

type CatalogService interface {
	ListStains(ctx context.Context) ([]*types.Stain, error)
	GetStain(ctx context.Context, name string) (*types.Stain, error)
	CreateStain(ctx context.Context, in CreateStainInput) (*types.Stain, error)

	ListMaterials(ctx context.Context) ([]*types.Material, error)
	GetMaterial(ctx context.Context, name string) (*types.Material, error)
	CreateMaterial(ctx context.Context, in CreateMaterialInput) (*types.Material, error)
}

type catalogService struct {
	log          *logger.Logger
	stains       repos.StainRepo
	materials    repos.MaterialRepo
	storeTimeout time.Duration
}

func NewCatalogService(log *logger.Logger, stains repos.StainRepo, materials repos.MaterialRepo, storeTimeout time.Duration) CatalogService {
	if storeTimeout <= 0 {
		storeTimeout = DefaultStoreTimeout
	}
	return &catalogService{
		log:          log.With("service", "CatalogService"),
		stains:       stains,
		materials:    materials,
		storeTimeout: storeTimeout,
	}
}

func (s *catalogService) ListStains(ctx context.Context) ([]*types.Stain, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	rows, err := s.stains.List(dbctx.New(ctx))
	if err != nil {
		return nil, apierr.Upstream("list stains", err)
	}
	return rows, nil
}

func (s *catalogService) GetStain(ctx context.Context, name string) (*types.Stain, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return findStain(dbctx.New(ctx), s.stains, name)
}

func (s *catalogService) CreateStain(ctx context.Context, in CreateStainInput) (*types.Stain, error) {
	row := &types.Stain{
		Name:        slugify(in.Name),
		DisplayName: cleanText(in.DisplayName),
		Color:       cleanText(in.Color),
		Category:    in.Category,
		Description: cleanText(in.Description),
		Icon:        cleanText(in.Icon),
	}
	if row.Name == "" || row.DisplayName == "" {
		return nil, apierr.BadRequest(errors.New("name and displayName must not be empty"))
	}
	if !row.Category.Valid() {
		return nil, apierr.BadRequest(fmt.Errorf("unknown stain category %q", in.Category))
	}
	if row.Icon == "" {
		row.Icon = "stain"
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	dbc := dbctx.New(ctx)

	existing, err := s.stains.GetByNames(dbc, []string{row.Name})
	if err != nil {
		return nil, apierr.Upstream("lookup stain", err)
	}
	if len(existing) > 0 {
		return nil, apierr.Conflict("stain", fmt.Errorf("stain %q already exists", row.Name))
	}
	created, err := s.stains.Create(dbc, []*types.Stain{row})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierr.Conflict("stain", fmt.Errorf("stain %q already exists", row.Name))
		}
		return nil, apierr.Upstream("create stain", err)
	}
	s.log.Info("stain created", "stain", row.Name, "id", created[0].ID)
	return created[0], nil
}

func (s *catalogService) ListMaterials(ctx context.Context) ([]*types.Material, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	rows, err := s.materials.List(dbctx.New(ctx))
	if err != nil {
		return nil, apierr.Upstream("list materials", err)
	}
	return rows, nil
}

func (s *catalogService) GetMaterial(ctx context.Context, name string) (*types.Material, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return findMaterial(dbctx.New(ctx), s.materials, name)
}

func (s *catalogService) CreateMaterial(ctx context.Context, in CreateMaterialInput) (*types.Material, error) {
	row := &types.Material{
		Name:        slugify(in.Name),
		DisplayName: cleanText(in.DisplayName),
		Type:        in.Type,
		CareNotes:   cleanText(in.CareNotes),
		Description: cleanText(in.Description),
		CommonUses:  cleanText(in.CommonUses),
		Icon:        cleanText(in.Icon),
	}
	if row.Name == "" || row.DisplayName == "" {
		return nil, apierr.BadRequest(errors.New("name and displayName must not be empty"))
	}
	if !row.Type.Valid() {
		return nil, apierr.BadRequest(fmt.Errorf("unknown material type %q", in.Type))
	}
	if row.Icon == "" {
		row.Icon = "material"
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	dbc := dbctx.New(ctx)

	existing, err := s.materials.GetByNames(dbc, []string{row.Name})
	if err != nil {
		return nil, apierr.Upstream("lookup material", err)
	}
	if len(existing) > 0 {
		return nil, apierr.Conflict("material", fmt.Errorf("material %q already exists", row.Name))
	}
	created, err := s.materials.Create(dbc, []*types.Material{row})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierr.Conflict("material", fmt.Errorf("material %q already exists", row.Name))
		}
		return nil, apierr.Upstream("create material", err)
	}
	s.log.Info("material created", "material", row.Name, "id", created[0].ID)
	return created[0], nil
}

func findStain(dbc dbctx.Context, stains repos.StainRepo, name string) (*types.Stain, error) {
	rows, err := stains.GetByNames(dbc, []string{name})
	if err != nil {
		return nil, apierr.Upstream("get stain", err)
	}
	if len(rows) == 0 || rows[0] == nil {
		return nil, apierr.NotFound("stain")
	}
	return rows[0], nil
}

func findMaterial(dbc dbctx.Context, materials repos.MaterialRepo, name string) (*types.Material, error) {
	rows, err := materials.GetByNames(dbc, []string{name})
	if err != nil {
		return nil, apierr.Upstream("get material", err)
	}
	if len(rows) == 0 || rows[0] == nil {
		return nil, apierr.NotFound("material")
	}
	return rows[0], nil
}
