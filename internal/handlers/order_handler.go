package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hrone/internal/models"
	"hrone/internal/repositories"
	"hrone/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/orders", h.HandleCreateOrder)
	router.Get("/orders/:user_id", h.HandleListOrders)
}

// HandleCreateOrder creates a new order. Each item's product_id must be a
// well-formed identifier and each quantity strictly positive; the referenced
// products are not required to exist.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var input models.OrderCreate
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	order, err := h.service.CreateOrder(c.Context(), input)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return internalError(c, "Could not create order")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// listOrdersParams carries the pagination for GET /orders/:user_id.
type listOrdersParams struct {
	Limit  int64 `query:"limit" json:"limit" validate:"min=1,max=100"`
	Offset int64 `query:"offset" json:"offset" validate:"min=0"`
}

// HandleListOrders lists the orders belonging to the user in the path.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	params := listOrdersParams{Limit: repositories.DefaultLimit}
	if err := c.QueryParser(&params); err != nil {
		log.Printf("Error parsing order query parameters: %v", err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Invalid query parameters",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(params); err != nil {
		return respondValidationErrors(c, err)
	}

	orders, err := h.service.ListOrders(c.Context(), repositories.OrderQuery{
		UserID: c.Params("user_id"),
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return internalError(c, "Could not retrieve orders")
	}
	return c.JSON(fiber.Map{"orders": orders})
}
