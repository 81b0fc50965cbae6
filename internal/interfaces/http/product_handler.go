package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/application/usecase"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
	"github.com/jhoicas/kardex-api/pkg/validator"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc        *usecase.ProductUseCase
	kardex    *inventory.KardexUseCase
	reconcile *inventory.ReconcileUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, kardex *inventory.KardexUseCase, reconcile *inventory.ReconcileUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, kardex: kardex, reconcile: reconcile}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto (el stock inicial siempre es 0)"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(err)})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetBySKU godoc
// @Summary      Obtener producto por SKU
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/sku/{sku} [get]
func (h *ProductHandler) GetBySKU(c *fiber.Ctx) error {
	out, err := h.uc.GetBySKU(c.Params("sku"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        skip         query  int     false  "Registros a saltar"        default(0)
// @Param        limit        query  int     false  "Límite"                    default(100)
// @Param        category_id  query  string  false  "Filtrar por categoría"
// @Param        search       query  string  false  "Buscar por SKU o nombre"
// @Param        active_only  query  bool    false  "Solo productos activos"
// @Param        low_stock    query  bool    false  "Solo con stock <= mínimo"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Skip: c.QueryInt("skip", 0), Limit: c.QueryInt("limit", 0)}
	page.DefaultPage()
	out, err := h.uc.List(repository.ProductFilter{
		ActiveOnly:   c.QueryBool("active_only", false),
		CategoryID:   c.Query("category_id"),
		Search:       c.Query("search"),
		LowStockOnly: c.QueryBool("low_stock", false),
		Skip:         page.Skip,
		Limit:        page.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar (current_stock no es actualizable)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(err)})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar producto (borrado lógico)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto desactivado"})
}

// Kardex godoc
// @Summary      Kardex del producto
// @Description  Historial de movimientos del producto con su estado de stock
//
//	actual, ordenado del más reciente al más antiguo.
//
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id          path   string  true   "ID del producto"
// @Param        skip        query  int     false  "Registros a saltar"  default(0)
// @Param        limit       query  int     false  "Límite"              default(100)
// @Param        start_date  query  string  false  "Desde (RFC3339, inclusivo)"
// @Param        end_date    query  string  false  "Hasta (RFC3339, inclusivo)"
// @Success      200  {object}  dto.KardexResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/kardex [get]
func (h *ProductHandler) Kardex(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date/end_date deben ser RFC3339"})
	}
	page := dto.PageRequest{Skip: c.QueryInt("skip", 0), Limit: c.QueryInt("limit", 0)}
	page.DefaultPage()
	out, err := h.kardex.Kardex(c.Params("id"), start, end, page.Skip, page.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Reconciliar saldo del producto
// @Description  Recalcula el saldo desde el historial completo de movimientos y
//
//	lo compara contra el saldo cacheado. Solo reporta: nunca corrige.
//
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ReconcileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/reconcile [post]
func (h *ProductHandler) Reconcile(c *fiber.Ctx) error {
	out, err := h.reconcile.Reconcile(c.Params("id"))
	if err != nil {
		if out != nil {
			// Discrepancia: devolver el detalle con 409 para que el operador investigue
			return c.Status(fiber.StatusConflict).JSON(out)
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseDateRange lee start_date y end_date (RFC3339) de la query.
func parseDateRange(c *fiber.Ctx) (start, end *time.Time, err error) {
	if s := c.Query("start_date"); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return nil, nil, perr
		}
		start = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return nil, nil, perr
		}
		end = &t
	}
	return start, end, nil
}
