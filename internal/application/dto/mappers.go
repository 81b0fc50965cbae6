package dto

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// FromProduct mapea la entidad Product al DTO público.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		UnitPrice:     p.UnitPrice,
		SalePrice:     p.SalePrice,
		UnitOfMeasure: p.UnitOfMeasure,
		MinStock:      p.MinStock,
		CurrentStock:  p.CurrentStock,
		IsActive:      p.IsActive(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		CreatedBy:     p.CreatedBy,
	}
}

// FromCategory mapea la entidad Category al DTO público.
func FromCategory(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.Status == entity.CategoryStatusActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		CreatedBy:   c.CreatedBy,
	}
}

// FromUser mapea la entidad User al DTO público (sin el hash de contraseña).
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromAlert mapea la entidad Alert al DTO público.
func FromAlert(a *entity.Alert) AlertResponse {
	return AlertResponse{
		ID:           a.ID,
		ProductID:    a.ProductID,
		AlertType:    a.AlertType,
		CurrentStock: a.CurrentStock,
		MinStock:     a.MinStock,
		Notes:        a.Notes,
		IsResolved:   a.IsResolved,
		ResolvedAt:   a.ResolvedAt,
		ResolvedBy:   a.ResolvedBy,
		CreatedAt:    a.CreatedAt,
	}
}
