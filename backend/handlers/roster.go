package handlers

import (
	"time"

	"salesrep-roster/backend/services"
	"salesrep-roster/backend/system"

	"github.com/gofiber/fiber/v2"
)

// GetSalesReps reports the minimum and maximum representatives per region
// GET /salesrep?region=Europe
func (h *Handler) GetSalesReps(c *fiber.Ctx) error {
	countries, err := h.Countries.List(c.UserContext(), c.Query("region"))
	if err != nil {
		return err
	}

	started := time.Now()
	salesReps, err := services.CalculateSalesReps(countries)
	h.Metrics.ObserveSalesReps(started, err)
	if err != nil {
		return err
	}

	system.Info("SalesRep assignments have been calculated successfully")
	return c.JSON(salesReps)
}

// GetOptimalRoster assigns every country to the minimum number of
// representatives, balancing workload within each region
// GET /optimal?region=Europe
func (h *Handler) GetOptimalRoster(c *fiber.Ctx) error {
	countries, err := h.Countries.List(c.UserContext(), c.Query("region"))
	if err != nil {
		return err
	}

	started := time.Now()
	roster, err := services.CalculateOptimalSalesRepRoster(countries)
	h.Metrics.ObserveRoster(started, roster, c.Query("region") == "", err)
	if err != nil {
		return err
	}

	system.Info("Optimal rosters have been calculated successfully")
	return c.JSON(roster)
}
