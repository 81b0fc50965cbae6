package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
	"github.com/jhoicas/kardex-api/pkg/validator"
)

// InventoryHandler maneja las peticiones HTTP de movimientos del ledger (protegido).
type InventoryHandler struct {
	uc *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// roleAllowsMovement decide si el rol puede registrar el tipo de movimiento.
// El administrador registra todo; el auxiliar opera bodega (entradas de compra,
// ajustes y devoluciones a proveedor); el vendedor opera mostrador (ventas y
// devoluciones de clientes).
func roleAllowsMovement(role, movementType string) bool {
	if role == entity.RoleAdministrador {
		return true
	}
	switch movementType {
	case domaininv.MovementEntradaCompra, domaininv.MovementAjusteConteo,
		domaininv.MovementAjusteMerma, domaininv.MovementDevolucionProveedor:
		return role == entity.RoleAuxiliar
	case domaininv.MovementSalidaVenta, domaininv.MovementDevolucionCliente:
		return role == entity.RoleVendedor
	}
	return false
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Registra un movimiento del ledger. La operación es atómica:
//
//	movimiento, saldo del producto y alertas se actualizan juntos.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "product_id, movement_type, quantity; unit_price requerido en entrada_compra"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory-movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.register(c, in)
}

// RegisterEntrada godoc
// @Summary      Registrar entrada de compra
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "product_id, quantity, reference_number y unit_price requeridos"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory-movements/entrada [post]
func (h *InventoryHandler) RegisterEntrada(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.MovementType = domaininv.MovementEntradaCompra
	return h.register(c, in)
}

// RegisterSalida godoc
// @Summary      Registrar salida por venta
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "product_id, quantity y reference_number requeridos"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory-movements/salida [post]
func (h *InventoryHandler) RegisterSalida(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.MovementType = domaininv.MovementSalidaVenta
	return h.register(c, in)
}

// RegisterAjuste godoc
// @Summary      Registrar ajuste de inventario
// @Description  movement_type debe ser ajuste_conteo (cantidad con signo) o
//
//	ajuste_merma. Las notas son obligatorias.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "product_id, movement_type (ajuste_*), quantity, notes"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory-movements/ajuste [post]
func (h *InventoryHandler) RegisterAjuste(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.MovementType != domaininv.MovementAjusteConteo && in.MovementType != domaininv.MovementAjusteMerma {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movement_type debe ser ajuste_conteo o ajuste_merma"})
	}
	return h.register(c, in)
}

func (h *InventoryHandler) register(c *fiber.Ctx, in dto.CreateMovementRequest) error {
	if err := validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(err)})
	}
	if !domaininv.IsValidType(in.MovementType) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movement_type desconocido"})
	}
	if !roleAllowsMovement(GetRole(c), in.MovementType) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para este tipo de movimiento"})
	}
	out, err := h.uc.RegisterMovement(c.Context(), inventory.MovementInput{
		UserID:          GetUserID(c),
		ProductID:       in.ProductID,
		MovementType:    in.MovementType,
		Quantity:        in.Quantity,
		ReferenceNumber: in.ReferenceNumber,
		Notes:           in.Notes,
		UnitPrice:       in.UnitPrice,
		MovementDate:    in.MovementDate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        skip           query  int     false  "Registros a saltar"  default(0)
// @Param        limit          query  int     false  "Límite"              default(100)
// @Param        product_id     query  string  false  "Filtrar por producto"
// @Param        movement_type  query  string  false  "Filtrar por tipo"
// @Param        start_date     query  string  false  "Desde (RFC3339, inclusivo)"
// @Param        end_date       query  string  false  "Hasta (RFC3339, inclusivo)"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory-movements [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date/end_date deben ser RFC3339"})
	}
	page := dto.PageRequest{Skip: c.QueryInt("skip", 0), Limit: c.QueryInt("limit", 0)}
	page.DefaultPage()
	out, err := h.uc.List(repository.MovementFilter{
		ProductID:    c.Query("product_id"),
		MovementType: c.Query("movement_type"),
		StartDate:    start,
		EndDate:      end,
		Skip:         page.Skip,
		Limit:        page.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory-movements/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
