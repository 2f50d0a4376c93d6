package service

import (
	"context"
	"fmt"
	"strings"

	"wardrobe_catalog/internal/models"
	"wardrobe_catalog/internal/repository"
)

// seasonFilterAll disables season filtering (compared case-insensitively).
const seasonFilterAll = "all"

// WardrobeService implements category and clothing operations on top of a
// WardrobeRepo. Every mutation is a read-modify-write under the caller's lock.
type WardrobeService struct {
	repo  repository.WardrobeRepo
	ids   IDGenerator
	locks userLocks
}

func NewWardrobeService(repo repository.WardrobeRepo, ids IDGenerator) *WardrobeService {
	if ids == nil {
		ids = NewSequence()
	}
	return &WardrobeService{repo: repo, ids: ids}
}

func (s *WardrobeService) Categories(ctx context.Context, userID int) ([]string, error) {
	w, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return []string{}, nil
	}
	return w.Categories, nil
}

// AddCategory appends category when absent and gives it an empty shelf.
// Adding an existing category changes nothing. A shelf already created by
// AddCloth keeps its items.
func (s *WardrobeService) AddCategory(ctx context.Context, userID int, category string) ([]string, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	w, err := s.loadOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w.HasCategory(category) {
		return w.Categories, nil
	}

	w.Categories = append(w.Categories, category)
	w.EnsureShelf(category)
	if err := s.repo.Save(ctx, userID, w); err != nil {
		return nil, err
	}
	return w.Categories, nil
}

// Clothes lists the items under category. A season other than "" or "all"
// keeps items of that season plus "All Season" items.
func (s *WardrobeService) Clothes(ctx context.Context, userID int, category, season string) ([]models.ClothingItem, error) {
	w, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return []models.ClothingItem{}, nil
	}

	items := w.Items(category)
	if season == "" || strings.EqualFold(season, seasonFilterAll) {
		return items, nil
	}

	out := make([]models.ClothingItem, 0, len(items))
	for _, it := range items {
		if matchesSeason(it.Season, season) {
			out = append(out, it)
		}
	}
	return out, nil
}

func matchesSeason(itemSeason, filter string) bool {
	s := strings.ToLower(itemSeason)
	return s == strings.ToLower(filter) || s == strings.ToLower(models.SeasonAll)
}

// AddCloth files a new item under in.Category, creating the shelf if needed.
// The category is not added to the category list.
func (s *WardrobeService) AddCloth(ctx context.Context, userID int, in ClothInput) (models.ClothingItem, error) {
	if in.Category == "" || in.Name == "" || in.Color == "" || in.Season == "" {
		return models.ClothingItem{}, fmt.Errorf("%w: category, name, color and season are required", ErrValidation)
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	w, err := s.loadOrNew(ctx, userID)
	if err != nil {
		return models.ClothingItem{}, err
	}

	item := in.item(s.ids.NextID())
	i := w.EnsureShelf(in.Category)
	w.Shelves[i].Items = append(w.Shelves[i].Items, item)

	if err := s.repo.Save(ctx, userID, w); err != nil {
		return models.ClothingItem{}, err
	}
	return item, nil
}

// UpdateCloth replaces the first item with id. When in.Category names a
// different category the item moves to the end of that shelf.
func (s *WardrobeService) UpdateCloth(ctx context.Context, userID int, id int64, in ClothInput) (models.ClothingItem, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	w, err := s.repo.Get(ctx, userID)
	if err != nil {
		return models.ClothingItem{}, err
	}
	if w == nil {
		return models.ClothingItem{}, ErrWardrobeNotFound
	}

	si, pi, ok := w.Locate(id)
	if !ok {
		return models.ClothingItem{}, ErrClothNotFound
	}

	item := in.item(id)
	if in.Category == "" || in.Category == w.Shelves[si].Category {
		w.Shelves[si].Items[pi] = item
	} else {
		w.RemoveAt(si, pi)
		ti := w.EnsureShelf(in.Category)
		w.Shelves[ti].Items = append(w.Shelves[ti].Items, item)
	}

	if err := s.repo.Save(ctx, userID, w); err != nil {
		return models.ClothingItem{}, err
	}
	return item, nil
}

// DeleteCloth removes the first item with id, scanning shelves in order.
func (s *WardrobeService) DeleteCloth(ctx context.Context, userID int, id int64) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	w, err := s.repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if w == nil {
		return ErrWardrobeNotFound
	}

	si, pi, ok := w.Locate(id)
	if !ok {
		return ErrClothNotFound
	}
	w.RemoveAt(si, pi)
	return s.repo.Save(ctx, userID, w)
}

// Summary reports the category list and per-shelf item counts.
func (s *WardrobeService) Summary(ctx context.Context, userID int) (WardrobeSummary, error) {
	w, err := s.repo.Get(ctx, userID)
	if err != nil {
		return WardrobeSummary{}, err
	}
	if w == nil {
		w = models.NewWardrobe()
	}
	out := WardrobeSummary{Categories: w.Categories, Shelves: make([]ShelfCount, 0, len(w.Shelves))}
	for _, sh := range w.Shelves {
		out.Shelves = append(out.Shelves, ShelfCount{Category: sh.Category, Count: len(sh.Items)})
	}
	return out, nil
}

func (s *WardrobeService) loadOrNew(ctx context.Context, userID int) (*models.Wardrobe, error) {
	w, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = models.NewWardrobe()
	}
	return w, nil
}
