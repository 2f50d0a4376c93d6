package models

// ClothingItem is a single piece of clothing filed under a category.
type ClothingItem struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image"` // opaque reference, never fetched or transformed
	Color  string `json:"color"`
	Season string `json:"season"` // Spring | Summer | Fall | Winter | All Season
}

// Shelf holds the items stored under one category name.
type Shelf struct {
	Category string         `json:"category"`
	Items    []ClothingItem `json:"items"`
}

// Wardrobe is a user's chosen categories plus the clothes filed under each.
//
// Shelves are kept in creation order, which is also the order update and delete
// scan them in. A shelf may exist for a category that is not in Categories:
// adding or moving an item into an unknown category creates the shelf only.
type Wardrobe struct {
	Categories []string `json:"categories"`
	Shelves    []Shelf  `json:"shelves"`
}

func NewWardrobe() *Wardrobe {
	return &Wardrobe{Categories: []string{}, Shelves: []Shelf{}}
}

// HasCategory reports whether name was added through the category list.
func (w *Wardrobe) HasCategory(name string) bool {
	for _, c := range w.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// ShelfIndex returns the position of the shelf for category, or -1.
func (w *Wardrobe) ShelfIndex(category string) int {
	for i := range w.Shelves {
		if w.Shelves[i].Category == category {
			return i
		}
	}
	return -1
}

// EnsureShelf returns the position of the shelf for category, appending an
// empty one when missing.
func (w *Wardrobe) EnsureShelf(category string) int {
	if i := w.ShelfIndex(category); i >= 0 {
		return i
	}
	w.Shelves = append(w.Shelves, Shelf{Category: category, Items: []ClothingItem{}})
	return len(w.Shelves) - 1
}

// Items returns a copy of the items under category; empty when the shelf is absent.
func (w *Wardrobe) Items(category string) []ClothingItem {
	i := w.ShelfIndex(category)
	if i < 0 {
		return []ClothingItem{}
	}
	return append([]ClothingItem{}, w.Shelves[i].Items...)
}

// Locate finds the first item with id, scanning shelves in order.
func (w *Wardrobe) Locate(id int64) (shelf, pos int, ok bool) {
	for si := range w.Shelves {
		for pi, it := range w.Shelves[si].Items {
			if it.ID == id {
				return si, pi, true
			}
		}
	}
	return -1, -1, false
}

// RemoveAt splices the item at (shelf, pos) out and returns it.
func (w *Wardrobe) RemoveAt(shelf, pos int) ClothingItem {
	items := w.Shelves[shelf].Items
	it := items[pos]
	w.Shelves[shelf].Items = append(items[:pos], items[pos+1:]...)
	return it
}

// Clone returns a deep copy so stores never share slices with callers.
func (w *Wardrobe) Clone() *Wardrobe {
	if w == nil {
		return nil
	}
	out := &Wardrobe{
		Categories: append([]string{}, w.Categories...),
		Shelves:    make([]Shelf, len(w.Shelves)),
	}
	for i, s := range w.Shelves {
		out.Shelves[i] = Shelf{Category: s.Category, Items: append([]ClothingItem{}, s.Items...)}
	}
	return out
}
