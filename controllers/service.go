package controllers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lotusspa/scheduler/db"
	"github.com/lotusspa/scheduler/models"
	"github.com/lotusspa/scheduler/redis"
	"github.com/lotusspa/scheduler/scheduling"
	"github.com/lotusspa/scheduler/utils"
)

// GetAllServices returns the service catalog
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// catalogVersion changes whenever the catalog does, so cached
// eligible-service results go stale with it.
func catalogVersion() (string, error) {
	var count int64
	var latest struct{ Max time.Time }
	if err := db.DB.Model(&models.Service{}).Count(&count).Error; err != nil {
		return "", err
	}
	if err := db.DB.Model(&models.Service{}).
		Select("COALESCE(MAX(updated_at), 'epoch') AS max").
		Scan(&latest).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%d", count, latest.Max.Unix()), nil
}

// GetEligibleServices returns the catalog subset a staff member may perform.
// The filter itself is pure, so results are memoized in Redis by
// (role, specialties, catalog version).
func GetEligibleServices(c *fiber.Ctx) error {
	staffID, err := c.ParamsInt("staffId")
	if err != nil || staffID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid staff id",
			Error:   "staffId must be a positive integer",
		})
	}

	var staff models.StaffProfile
	if err := db.DB.First(&staff, staffID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Staff member not found",
			Error:   err.Error(),
		})
	}

	version, err := catalogVersion()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to version the catalog",
			Error:   err.Error(),
		})
	}

	key := scheduling.EligibleServicesCacheKey(&staff, version)
	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, key).Result(); err == nil {
			var eligible []models.Service
			if json.Unmarshal([]byte(cached), &eligible) == nil {
				return c.JSON(eligible)
			}
		}
	}

	var catalog []models.Service
	if err := db.DB.Find(&catalog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}

	eligible := scheduling.EligibleServices(&staff, catalog)
	if eligible == nil {
		eligible = []models.Service{}
	}

	if redis.Client != nil {
		if encoded, err := json.Marshal(eligible); err == nil {
			redis.Client.Set(redis.Ctx, key, encoded, time.Hour)
		}
	}
	return c.JSON(eligible)
}
