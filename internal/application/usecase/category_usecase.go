package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. El nombre es único.
func (uc *CategoryUseCase) Create(userID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Status:      entity.CategoryStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   userID,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	resp := dto.FromCategory(category)
	return &resp, nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromCategory(category)
	return &resp, nil
}

// Update actualiza una categoría.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name != category.Name {
		existing, _ := uc.repo.GetByName(*in.Name)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.IsActive != nil {
		if *in.IsActive {
			category.Status = entity.CategoryStatusActive
		} else {
			category.Status = entity.CategoryStatusInactive
		}
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	resp := dto.FromCategory(category)
	return &resp, nil
}

// List lista categorías con paginación y el total sin paginar.
func (uc *CategoryUseCase) List(activeOnly bool, skip, limit int) (*dto.CategoryListResponse, error) {
	list, count, err := uc.repo.List(activeOnly, skip, limit)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		data = append(data, dto.FromCategory(c))
	}
	return &dto.CategoryListResponse{Data: data, Count: count}, nil
}

// Delete desactiva una categoría (borrado lógico). Los productos que la
// referencian conservan la referencia.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if category.Status == entity.CategoryStatusInactive {
		return nil
	}
	category.Status = entity.CategoryStatusInactive
	category.UpdatedAt = time.Now()
	return uc.repo.Update(category)
}
