package handlers

import (
	"net/http"
	"time"

	"salesrep-roster/backend/models"
	"salesrep-roster/backend/system"

	"github.com/gofiber/fiber/v2"
)

const backupVersion = "1.0"

// BackupData is the exported country table
type BackupData struct {
	ExportedAt time.Time        `json:"exported_at"`
	Version    string           `json:"version"`
	Countries  []models.Country `json:"countries"`
}

// ExportConfig exports all countries as JSON
// GET /api/backup/export
func (h *Handler) ExportConfig(c *fiber.Ctx) error {
	countries, err := h.Countries.List(c.UserContext(), "")
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	backup := BackupData{
		ExportedAt: time.Now(),
		Version:    backupVersion,
		Countries:  countries,
	}

	// Set filename for download
	filename := "roster-backup-" + time.Now().Format("2006-01-02") + ".json"
	c.Set("Content-Disposition", "attachment; filename="+filename)

	AddEvent("success", "Countries exported")
	return c.JSON(backup)
}

// ImportConfig replaces the country table with a backup
// POST /api/backup/import
func (h *Handler) ImportConfig(c *fiber.Ctx) error {
	var backup BackupData
	if err := c.BodyParser(&backup); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid backup file format"})
	}

	// Validate version
	if backup.Version == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid backup file: missing version"})
	}

	if err := h.Countries.Replace(c.UserContext(), backup.Countries); err != nil {
		return countryError(c, err)
	}

	system.Info("Countries imported: %d", len(backup.Countries))
	AddEvent("success", "Countries imported from backup")

	return c.JSON(fiber.Map{
		"message": "Countries imported successfully",
		"summary": fiber.Map{"countries": len(backup.Countries)},
	})
}
