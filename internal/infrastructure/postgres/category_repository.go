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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, description, status, created_at, updated_at, created_by`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría nueva. El nombre es único.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.Status,
		category.CreatedAt, category.UpdatedAt, nullable(category.CreatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	c, err := scanCategoryRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetByName obtiene una categoría por nombre exacto.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`
	c, err := scanCategoryRow(r.q.QueryRow(context.Background(), query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return c, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.Status, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista categorías con paginación y el total sin paginar.
func (r *CategoryRepo) List(activeOnly bool, skip, limit int) ([]*entity.Category, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if activeOnly {
		where += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, entity.CategoryStatusActive)
		pos++
	}

	var count int
	if err := r.q.QueryRow(context.Background(), "SELECT COUNT(*) FROM categories"+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	query := `SELECT ` + categoryColumns + ` FROM categories` + where + " ORDER BY name ASC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, limit, skip)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategoryRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, count, rows.Err()
}

func scanCategoryRow(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	var createdBy *string
	if err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt, &createdBy,
	); err != nil {
		return nil, err
	}
	if createdBy != nil {
		c.CreatedBy = *createdBy
	}
	return &c, nil
}
