package service

import "wardrobe_catalog/internal/models"

// ClothInput carries the client-supplied fields of a clothing item.
type ClothInput struct {
	Category string // required on add; optional on update (empty keeps the current one)
	Name     string
	Image    string // optional, stored as given
	Color    string
	Season   string
}

func (in ClothInput) item(id int64) models.ClothingItem {
	return models.ClothingItem{
		ID:     id,
		Name:   in.Name,
		Image:  in.Image,
		Color:  in.Color,
		Season: in.Season,
	}
}

// ShelfCount is one line of a wardrobe summary.
type ShelfCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// WardrobeSummary is what the live feed pushes to clients.
type WardrobeSummary struct {
	Categories []string     `json:"categories"`
	Shelves    []ShelfCount `json:"shelves"`
}
