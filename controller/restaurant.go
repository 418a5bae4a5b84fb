package controller

import (
	"errors"
	"taberu_api_ms/domain"
	"taberu_api_ms/services"

	"github.com/gofiber/fiber/v2"
)

type IRestaurantController interface {
	GetAll(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

type RestaurantController struct {
	restaurantService services.IRestaurantService
}

func NewRestaurantController(restaurantService services.IRestaurantService) IRestaurantController {
	return &RestaurantController{restaurantService: restaurantService}
}

func (rc *RestaurantController) GetAll(c *fiber.Ctx) error {
	restaurants, err := rc.restaurantService.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(restaurants)
}

func (rc *RestaurantController) GetByID(c *fiber.Ctx) error {
	restaurant, err := rc.restaurantService.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Restaurant not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(restaurant)
}

func (rc *RestaurantController) Create(c *fiber.Ctx) error {
	var restaurant domain.Restaurant
	if err := c.BodyParser(&restaurant); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if restaurant.Id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing restaurant ID",
		})
	}

	if err := rc.restaurantService.Create(&restaurant); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Created", "id": restaurant.Id})
}

func (rc *RestaurantController) Update(c *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := rc.restaurantService.Update(c.Params("id"), fields); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Updated"})
}

func (rc *RestaurantController) Delete(c *fiber.Ctx) error {
	if err := rc.restaurantService.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Deleted"})
}
