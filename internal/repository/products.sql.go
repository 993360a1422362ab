package repository

import (
	"context"
)

const productColumns = "product_no, title, price, text, imgurl, category, date"

const listProductsAsc = `SELECT ` + productColumns + `
FROM products
ORDER BY date ASC`

const listProductsDesc = `SELECT ` + productColumns + `
FROM products
ORDER BY date DESC`

func (q *Queries) ListProducts(ctx context.Context, descending bool) ([]Product, error) {
	query := listProductsAsc
	if descending {
		query = listProductsDesc
	}
	return q.queryProducts(ctx, query)
}

const listProductsByCategory = `SELECT ` + productColumns + `
FROM products
WHERE category = $1
ORDER BY date`

func (q *Queries) ListProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	return q.queryProducts(ctx, listProductsByCategory, category)
}

const getProduct = `SELECT ` + productColumns + `
FROM products
WHERE product_no = $1`

func (q *Queries) GetProduct(ctx context.Context, productNo int64) (Product, error) {
	row := q.db.QueryRow(ctx, getProduct, productNo)
	return scanProduct(row)
}

const productTitleExists = `SELECT EXISTS (
  SELECT 1 FROM products WHERE title = $1 AND product_no <> $2
)`

type ProductTitleExistsParams struct {
	Title string
	// ExceptProductNo skips the product being updated; zero matches no product.
	ExceptProductNo int64
}

func (q *Queries) ProductTitleExists(ctx context.Context, arg ProductTitleExistsParams) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, productTitleExists, arg.Title, arg.ExceptProductNo).Scan(&exists)
	return exists, err
}

type CreateProductParams struct {
	Title    string
	Price    string
	Text     string
	ImgURL   *string
	Category string
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error) {
	var cols columnSet
	cols.add("title", &arg.Title)
	cols.add("price", &arg.Price)
	cols.add("text", &arg.Text)
	cols.add("imgurl", arg.ImgURL)
	cols.add("category", &arg.Category)

	query := `INSERT INTO products ` + cols.insert() + `
RETURNING ` + productColumns

	row := q.db.QueryRow(ctx, query, cols.args...)
	return scanProduct(row)
}

type UpdateProductParams struct {
	ProductNo int64
	Title     *string
	Price     *string
	Text      *string
	ImgURL    *string
	Category  *string
}

func (p UpdateProductParams) columns() columnSet {
	var cols columnSet
	cols.add("title", p.Title)
	cols.add("price", p.Price)
	cols.add("text", p.Text)
	cols.add("imgurl", p.ImgURL)
	cols.add("category", p.Category)
	return cols
}

// UpdateProduct writes only the non-nil columns and returns pgx.ErrNoRows
// when no product has the given number.
func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error) {
	cols := arg.columns()
	if cols.empty() {
		return Product{}, ErrEmptyUpdate
	}

	query := `UPDATE products
SET ` + cols.assignments(1) + `
WHERE product_no = $1
RETURNING ` + productColumns

	args := append([]any{arg.ProductNo}, cols.args...)
	row := q.db.QueryRow(ctx, query, args...)
	return scanProduct(row)
}

const deleteProduct = `DELETE FROM products WHERE product_no = $1`

func (q *Queries) DeleteProduct(ctx context.Context, productNo int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteProduct, productNo)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ProductNo,
		&p.Title,
		&p.Price,
		&p.Text,
		&p.ImgURL,
		&p.Category,
		&p.Date,
	)
	return p, err
}

func (q *Queries) queryProducts(ctx context.Context, query string, args ...any) ([]Product, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
