package service

import "wardrobe_catalog/internal/models"

// CatalogService serves the fixed category and season lists.
type CatalogService struct{}

func NewCatalogService() *CatalogService { return &CatalogService{} }

func (CatalogService) PredefinedCategories() []string { return models.PredefinedCategories() }

func (CatalogService) Seasons() []string { return models.Seasons() }
