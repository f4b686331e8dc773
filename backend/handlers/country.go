package handlers

import (
	"errors"
	"net/http"

	"salesrep-roster/backend/models"
	"salesrep-roster/backend/services"
	"salesrep-roster/backend/system"

	"github.com/gofiber/fiber/v2"
)

// GetCountries returns all countries, optionally filtered by region
// GET /country?region=Europe
func (h *Handler) GetCountries(c *fiber.Ctx) error {
	countries, err := h.Countries.List(c.UserContext(), c.Query("region"))
	if err != nil {
		return err
	}
	system.Info("Countries have been retrieved successfully")
	return c.JSON(countries)
}

// CountryRecord is a country as seen by the admin API, including its id
type CountryRecord struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// GetCountryRecords lists countries with their ids for maintenance
// GET /api/countries?region=Europe
func (h *Handler) GetCountryRecords(c *fiber.Ctx) error {
	countries, err := h.Countries.List(c.UserContext(), c.Query("region"))
	if err != nil {
		system.Error("Listing country records failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	records := make([]CountryRecord, len(countries))
	for i, country := range countries {
		records[i] = CountryRecord{ID: country.ID, Name: country.Name, Region: country.Region}
	}
	return c.JSON(records)
}

// CreateCountry adds a country
// POST /api/countries
func (h *Handler) CreateCountry(c *fiber.Ctx) error {
	var input models.Country
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	country := models.Country{Name: input.Name, Region: input.Region}
	if err := h.Countries.Create(c.UserContext(), &country); err != nil {
		return countryError(c, err)
	}

	AddEvent("success", "Country added: "+country.Name+" ("+country.Region+")")
	return c.Status(http.StatusCreated).JSON(CountryRecord{ID: country.ID, Name: country.Name, Region: country.Region})
}

// UpdateCountry renames or moves a country to another region
// PUT /api/countries/:id
func (h *Handler) UpdateCountry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var input models.Country
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	country, err := h.Countries.Update(c.UserContext(), uint(id), input)
	if err != nil {
		return countryError(c, err)
	}

	AddEvent("success", "Country updated: "+country.Name+" ("+country.Region+")")
	return c.JSON(CountryRecord{ID: country.ID, Name: country.Name, Region: country.Region})
}

// DeleteCountry removes a country
// DELETE /api/countries/:id
func (h *Handler) DeleteCountry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	if err := h.Countries.Delete(c.UserContext(), uint(id)); err != nil {
		return countryError(c, err)
	}

	AddEvent("success", "Country deleted")
	return c.JSON(fiber.Map{"success": true})
}

func countryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidCountry):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrCountryNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Country not found"})
	case errors.Is(err, services.ErrDuplicateCountry):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": "Country already exists in this region"})
	default:
		system.Error("Country update failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}
