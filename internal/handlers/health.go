package handlers

import (
	"kobo/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports the liveness of the service and its backing stores.
func HealthCheck(c *fiber.Ctx) error {
	dbStatus := "up"
	if sqlDB, err := repositories.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	cacheStatus := "up"
	if repositories.CacheService == nil || repositories.CacheService.HealthCheck(c.Context()) != nil {
		cacheStatus = "down"
	}

	status := fiber.StatusOK
	if dbStatus == "down" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status":   "ok",
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
