package handlers

import (
	"net/http"

	"salesrep-roster/backend/models"
	"salesrep-roster/backend/system"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// UserRequest is the body of POST /api/users
type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GetUsers lists the admin accounts
// GET /api/users
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	admins := []models.Admin{}
	if err := h.DB.WithContext(c.UserContext()).Order("id ASC").Find(&admins).Error; err != nil {
		system.Error("Listing admins failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not list users"})
	}
	return c.JSON(admins)
}

// CreateUser adds an admin account
// POST /api/users
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Username and password are required"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not hash password"})
	}

	admin := models.Admin{Username: req.Username, Password: string(hashed)}
	if err := h.DB.WithContext(c.UserContext()).Create(&admin).Error; err != nil {
		system.Warn("Creating admin %s failed: %v", req.Username, err)
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": "User already exists"})
	}

	AddEvent("success", "User created: "+admin.Username)
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "User created", "user": admin.Username})
}

// DeleteUser removes an admin account. The last remaining admin cannot be
// deleted, since an empty table re-enables the default login.
// DELETE /api/users/:id
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	db := h.DB.WithContext(c.UserContext())

	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		system.Error("Counting admins failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete user"})
	}

	var admin models.Admin
	if err := db.First(&admin, uint(id)).Error; err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if count <= 1 {
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": "Cannot delete the last user"})
	}

	result := db.Delete(&models.Admin{}, admin.ID)
	if result.Error != nil {
		system.Error("Deleting admin %d failed: %v", id, result.Error)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete user"})
	}
	if result.RowsAffected == 0 {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	AddEvent("success", "User deleted: "+admin.Username)
	return c.JSON(fiber.Map{"message": "User deleted"})
}
