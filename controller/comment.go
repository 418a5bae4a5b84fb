package controller

import (
	"errors"
	"taberu_api_ms/domain"
	"taberu_api_ms/services"

	"github.com/gofiber/fiber/v2"
)

type ICommentController interface {
	GetAll(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

type CommentController struct {
	commentService services.ICommentService
}

func NewCommentController(commentService services.ICommentService) ICommentController {
	return &CommentController{commentService: commentService}
}

// GetAll lists comments, optionally filtered by ?restaurantId=
func (cc *CommentController) GetAll(c *fiber.Ctx) error {
	comments, err := cc.commentService.GetAll(c.Query("restaurantId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}

func (cc *CommentController) GetByID(c *fiber.Ctx) error {
	comment, err := cc.commentService.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Comment not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(comment)
}

func (cc *CommentController) Create(c *fiber.Ctx) error {
	var comment domain.Comment
	if err := c.BodyParser(&comment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if comment.Id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing comment ID",
		})
	}
	// The commenting identity is the verified device, not client input
	if deviceHash, ok := c.Locals("deviceHash").(string); ok {
		comment.UserId = deviceHash
	}

	if err := cc.commentService.Create(&comment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Comment created", "id": comment.Id})
}

func (cc *CommentController) Update(c *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := cc.commentService.Update(c.Params("id"), fields); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Updated"})
}

func (cc *CommentController) Delete(c *fiber.Ctx) error {
	if err := cc.commentService.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Deleted"})
}
