package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
	"github.com/jhoicas/kardex-api/pkg/validator"
)

// AlertHandler maneja las peticiones HTTP de alertas de stock (protegido).
type AlertHandler struct {
	uc *inventory.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *inventory.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        skip        query  int     false  "Registros a saltar"  default(0)
// @Param        limit       query  int     false  "Límite"              default(100)
// @Param        resolved    query  bool    false  "Filtrar por estado de resolución"
// @Param        alert_type  query  string  false  "low_stock | out_of_stock"
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200  {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Skip: c.QueryInt("skip", 0), Limit: c.QueryInt("limit", 0)}
	page.DefaultPage()
	filter := repository.AlertFilter{
		AlertType: c.Query("alert_type"),
		ProductID: c.Query("product_id"),
		Skip:      page.Skip,
		Limit:     page.Limit,
	}
	if c.Query("resolved") != "" {
		resolved := c.QueryBool("resolved", false)
		filter.Resolved = &resolved
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListActive godoc
// @Summary      Listar alertas activas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        skip        query  int     false  "Registros a saltar"  default(0)
// @Param        limit       query  int     false  "Límite"              default(100)
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200  {object}  dto.AlertListResponse
// @Router       /api/alerts/active [get]
func (h *AlertHandler) ListActive(c *fiber.Ctx) error {
	page := dto.PageRequest{Skip: c.QueryInt("skip", 0), Limit: c.QueryInt("limit", 0)}
	page.DefaultPage()
	out, err := h.uc.ListActive(c.Query("product_id"), page.Skip, page.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener alerta por ID
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.AlertResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id} [get]
func (h *AlertHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Resolver alerta manualmente
// @Description  is_resolved=true marca la alerta como resuelta registrando quién
//
//	la resolvió. Una alerta resuelta no se puede reabrir.
//
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la alerta"
// @Param        body  body  dto.UpdateAlertRequest  true  "is_resolved y/o notes"
// @Success      200   {object}  dto.AlertResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/alerts/{id} [patch]
func (h *AlertHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAlertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(err)})
	}
	out, err := h.uc.Resolve(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
