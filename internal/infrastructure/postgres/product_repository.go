package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, description, category_id, unit_price, sale_price, unit_of_measure, min_stock, current_stock, status, created_at, updated_at, created_by`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. CurrentStock inicia en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description,
		nullable(product.CategoryID), product.UnitPrice, product.SalePrice,
		product.UnitOfMeasure, product.MinStock, product.CurrentStock,
		product.Status, product.CreatedAt, product.UpdatedAt, nullable(product.CreatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku), "get product by sku")
}

// GetForUpdate bloquea la fila del producto hasta el fin de la transacción.
// Es el punto de serialización de movimientos concurrentes del mismo producto.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// Update actualiza un producto existente. current_stock no se toca aquí: solo
// cambia vía UpdateStock dentro de la transacción de un movimiento.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $2, name = $3, description = $4, category_id = $5, unit_price = $6,
			sale_price = $7, unit_of_measure = $8, min_stock = $9, status = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description,
		nullable(product.CategoryID), product.UnitPrice, product.SalePrice,
		product.UnitOfMeasure, product.MinStock, product.Status, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo la proyección cacheada del saldo.
func (r *ProductRepo) UpdateStock(productID string, currentStock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`,
		productID, currentStock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// List lista productos con filtros y paginación, más el total sin paginar.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if filter.ActiveOnly {
		where += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, entity.ProductStatusActive)
		pos++
	}
	if filter.CategoryID != "" {
		where += fmt.Sprintf(" AND category_id = $%d", pos)
		args = append(args, filter.CategoryID)
		pos++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (sku ILIKE $%d OR name ILIKE $%d)", pos, pos)
		args = append(args, "%"+filter.Search+"%")
		pos++
	}
	if filter.LowStockOnly {
		where += " AND current_stock <= min_stock"
	}

	var count int
	if err := r.q.QueryRow(context.Background(), "SELECT COUNT(*) FROM products"+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products` + where + " ORDER BY name ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, filter.Limit, filter.Skip)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, p)
	}
	return list, count, rows.Err()
}

// ListActive lista todos los productos activos (para el snapshot de inventario).
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE status = $1 ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, entity.ProductStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	p, err := scanProductRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func scanProduct(rows pgx.Rows) (*entity.Product, error) {
	p, err := scanProductRow(rows)
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return p, nil
}

func scanProductRow(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var categoryID, createdBy *string
	if err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &categoryID, &p.UnitPrice, &p.SalePrice,
		&p.UnitOfMeasure, &p.MinStock, &p.CurrentStock, &p.Status, &p.CreatedAt, &p.UpdatedAt, &createdBy,
	); err != nil {
		return nil, err
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	if createdBy != nil {
		p.CreatedBy = *createdBy
	}
	return &p, nil
}

// nullable convierte "" a NULL para columnas con FK opcional.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
