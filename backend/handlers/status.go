package handlers

import (
	"sync"
	"time"

	"salesrep-roster/backend/system"

	"github.com/gofiber/fiber/v2"
)

// ServiceStatus is the public service summary. Events stay behind /api/events.
type ServiceStatus struct {
	Uptime         string   `json:"uptime"`
	CountriesCount int64    `json:"countries_count"`
	Regions        []string `json:"regions"`
}

type SystemEvent struct {
	Time    string `json:"time"`
	Type    string `json:"type"` // info, warning, error, success
	Message string `json:"message"`
}

const maxEvents = 100

// Event log storage with mutex for thread safety
var (
	eventLog   = []SystemEvent{}
	eventMutex sync.RWMutex
)

// AddEvent adds a new event to the log
func AddEvent(eventType, message string) {
	eventMutex.Lock()
	defer eventMutex.Unlock()

	event := SystemEvent{
		Time:    time.Now().Format("15:04:05"),
		Type:    eventType,
		Message: message,
	}
	eventLog = append([]SystemEvent{event}, eventLog...)
	if len(eventLog) > maxEvents {
		eventLog = eventLog[:maxEvents]
	}

	// Also log to file
	switch eventType {
	case "error":
		system.Error("%s", message)
	case "warning":
		system.Warn("%s", message)
	default:
		system.Info("%s", message)
	}
}

// GetEventLog returns a copy of the event log, newest first
func GetEventLog() []SystemEvent {
	eventMutex.RLock()
	defer eventMutex.RUnlock()

	result := make([]SystemEvent, len(eventLog))
	copy(result, eventLog)
	return result
}

// GetStatus returns uptime and country totals
// GET /status
func (h *Handler) GetStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	count, err := h.Countries.Count(ctx)
	if err != nil {
		return err
	}
	regions, err := h.Countries.Regions(ctx)
	if err != nil {
		return err
	}

	return c.JSON(ServiceStatus{
		Uptime:         time.Since(h.started).Round(time.Second).String(),
		CountriesCount: count,
		Regions:        regions,
	})
}

// GetEvents returns recent events
// GET /api/events
func (h *Handler) GetEvents(c *fiber.Ctx) error {
	return c.JSON(GetEventLog())
}
