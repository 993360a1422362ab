package repository

import (
	"context"
)

const listCategories = `SELECT id, category
FROM categories
ORDER BY id`

func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.Query(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Category); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getCategory = `SELECT id, category
FROM categories
WHERE id = $1`

func (q *Queries) GetCategory(ctx context.Context, id int64) (Category, error) {
	var c Category
	err := q.db.QueryRow(ctx, getCategory, id).Scan(&c.ID, &c.Category)
	return c, err
}

const categoryExists = `SELECT EXISTS (
  SELECT 1 FROM categories WHERE category = $1
)`

func (q *Queries) CategoryExists(ctx context.Context, category string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, categoryExists, category).Scan(&exists)
	return exists, err
}

const createCategory = `INSERT INTO categories (category)
VALUES ($1)
RETURNING id, category`

func (q *Queries) CreateCategory(ctx context.Context, category string) (Category, error) {
	var c Category
	err := q.db.QueryRow(ctx, createCategory, category).Scan(&c.ID, &c.Category)
	return c, err
}

const updateCategory = `UPDATE categories
SET category = $2
WHERE id = $1
RETURNING id, category`

type UpdateCategoryParams struct {
	ID       int64
	Category string
}

func (q *Queries) UpdateCategory(ctx context.Context, arg UpdateCategoryParams) (Category, error) {
	var c Category
	err := q.db.QueryRow(ctx, updateCategory, arg.ID, arg.Category).Scan(&c.ID, &c.Category)
	return c, err
}

const deleteCategory = `DELETE FROM categories WHERE id = $1`

func (q *Queries) DeleteCategory(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteCategory, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
