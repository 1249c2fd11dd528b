package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hrone/internal/models"
	"hrone/internal/repositories"
	"hrone/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/products", h.HandleCreateProduct)
	router.Get("/products", h.HandleListProducts)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.ProductCreate
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	product, err := h.service.CreateProduct(c.Context(), input)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return internalError(c, "Could not create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// listProductsParams carries the optional filters and pagination for
// GET /products. Limit is pre-filled with the default before parsing, so
// only an explicitly supplied out-of-range value can fail validation.
type listProductsParams struct {
	Name   string `query:"name" json:"name"`
	Size   string `query:"size" json:"size"`
	Limit  int64  `query:"limit" json:"limit" validate:"min=1,max=100"`
	Offset int64  `query:"offset" json:"offset" validate:"min=0"`
}

// HandleListProducts lists products matching the query parameters.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	params := listProductsParams{Limit: repositories.DefaultLimit}
	if err := c.QueryParser(&params); err != nil {
		log.Printf("Error parsing product query parameters: %v", err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Invalid query parameters",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(params); err != nil {
		return respondValidationErrors(c, err)
	}

	products, err := h.service.ListProducts(c.Context(), repositories.ProductQuery{
		Name:   params.Name,
		Size:   params.Size,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return internalError(c, "Could not retrieve products")
	}
	return c.JSON(fiber.Map{"products": products})
}
