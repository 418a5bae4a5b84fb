package controller

import (
	"errors"
	"taberu_api_ms/domain"
	"taberu_api_ms/services"

	"github.com/gofiber/fiber/v2"
)

type ICategoryController interface {
	GetAll(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	CreateAll(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

type CategoryController struct {
	categoryService services.ICategoryService
}

func NewCategoryController(categoryService services.ICategoryService) ICategoryController {
	return &CategoryController{categoryService: categoryService}
}

func (cc *CategoryController) GetAll(c *fiber.Ctx) error {
	categories, err := cc.categoryService.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(categories)
}

func (cc *CategoryController) GetByID(c *fiber.Ctx) error {
	category, err := cc.categoryService.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(category)
}

// CreateAll accepts a batch of categories, matching the seeding flow of the
// clients.
func (cc *CategoryController) CreateAll(c *fiber.Ctx) error {
	var categories []domain.Category
	if err := c.BodyParser(&categories); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if len(categories) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No categories provided",
		})
	}
	for _, category := range categories {
		if category.Id == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Missing category ID",
			})
		}
	}

	if err := cc.categoryService.CreateAll(categories); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Created", "count": len(categories)})
}

func (cc *CategoryController) Update(c *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := cc.categoryService.Update(c.Params("id"), fields); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Updated"})
}

func (cc *CategoryController) Delete(c *fiber.Ctx) error {
	if err := cc.categoryService.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Deleted"})
}
