package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wardrobe_catalog/internal/models"
)

// WardrobeSQLite stores wardrobes relationally: ordered categories, ordered
// shelves and ordered items per shelf.
type WardrobeSQLite struct {
	db *sql.DB
}

func NewWardrobeSQLite(db *sql.DB) *WardrobeSQLite {
	return &WardrobeSQLite{db: db}
}

var _ WardrobeRepo = (*WardrobeSQLite)(nil)

const (
	selectWardrobeSQL   = `SELECT user_id FROM wardrobes WHERE user_id = ?`
	selectCategoriesSQL = `SELECT name FROM wardrobe_categories WHERE user_id = ? ORDER BY position`
	selectShelvesSQL    = `SELECT category FROM wardrobe_shelves WHERE user_id = ? ORDER BY position`
	selectItemsSQL      = `
		SELECT shelf_position, item_id, name, image, color, season
		FROM wardrobe_items WHERE user_id = ?
		ORDER BY shelf_position, position
	`

	upsertWardrobeSQL    = `INSERT OR IGNORE INTO wardrobes (user_id) VALUES (?)`
	deleteItemsSQL       = `DELETE FROM wardrobe_items WHERE user_id = ?`
	deleteShelvesSQL     = `DELETE FROM wardrobe_shelves WHERE user_id = ?`
	deleteCategoriesSQL  = `DELETE FROM wardrobe_categories WHERE user_id = ?`
	insertCategorySQL    = `INSERT INTO wardrobe_categories (user_id, position, name) VALUES (?, ?, ?)`
	insertShelfSQL       = `INSERT INTO wardrobe_shelves (user_id, position, category) VALUES (?, ?, ?)`

	insertWardrobeItemSQL = `
		INSERT INTO wardrobe_items (user_id, shelf_position, position, item_id, name, image, color, season)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
)

// Get loads the wardrobe for userID, or (nil, nil) if there is none.
func (r *WardrobeSQLite) Get(ctx context.Context, userID int) (*models.Wardrobe, error) {
	var id int
	if err := r.db.QueryRowContext(ctx, selectWardrobeSQL, userID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select wardrobe %d: %w", userID, err)
	}

	w := models.NewWardrobe()
	var err error
	if w.Categories, err = r.selectStrings(ctx, selectCategoriesSQL, userID); err != nil {
		return nil, fmt.Errorf("select categories %d: %w", userID, err)
	}
	shelves, err := r.selectStrings(ctx, selectShelvesSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select shelves %d: %w", userID, err)
	}
	for _, c := range shelves {
		w.Shelves = append(w.Shelves, models.Shelf{Category: c, Items: []models.ClothingItem{}})
	}
	if err := r.loadItems(ctx, userID, w); err != nil {
		return nil, fmt.Errorf("select items %d: %w", userID, err)
	}
	return w, nil
}

func (r *WardrobeSQLite) selectStrings(ctx context.Context, query string, userID int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *WardrobeSQLite) loadItems(ctx context.Context, userID int, w *models.Wardrobe) error {
	rows, err := r.db.QueryContext(ctx, selectItemsSQL, userID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			shelf int
			it    models.ClothingItem
		)
		if err := rows.Scan(&shelf, &it.ID, &it.Name, &it.Image, &it.Color, &it.Season); err != nil {
			return err
		}
		if shelf < 0 || shelf >= len(w.Shelves) {
			return fmt.Errorf("item %d references missing shelf %d", it.ID, shelf)
		}
		w.Shelves[shelf].Items = append(w.Shelves[shelf].Items, it)
	}
	return rows.Err()
}

// Save rewrites the user's rows inside one transaction.
func (r *WardrobeSQLite) Save(ctx context.Context, userID int, w *models.Wardrobe) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save wardrobe %d: %w", userID, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range []string{upsertWardrobeSQL, deleteItemsSQL, deleteShelvesSQL, deleteCategoriesSQL} {
		if _, err := tx.ExecContext(ctx, q, userID); err != nil {
			return fmt.Errorf("reset wardrobe %d: %w", userID, err)
		}
	}
	for pos, name := range w.Categories {
		if _, err := tx.ExecContext(ctx, insertCategorySQL, userID, pos, name); err != nil {
			return fmt.Errorf("insert category %q: %w", name, err)
		}
	}
	for sp, shelf := range w.Shelves {
		if _, err := tx.ExecContext(ctx, insertShelfSQL, userID, sp, shelf.Category); err != nil {
			return fmt.Errorf("insert shelf %q: %w", shelf.Category, err)
		}
		for pos, it := range shelf.Items {
			if _, err := tx.ExecContext(ctx, insertWardrobeItemSQL,
				userID, sp, pos, it.ID, it.Name, it.Image, it.Color, it.Season); err != nil {
				return fmt.Errorf("insert item %d: %w", it.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit wardrobe %d: %w", userID, err)
	}
	return nil
}
