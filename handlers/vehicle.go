package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/OishiSharmeen04/TravelEase-server/models"
	"github.com/OishiSharmeen04/TravelEase-server/utils"
)

const (
	latestLimit    = 6
	latestCacheKey = "vehicles:latest"
	latestCacheTTL = time.Minute
)

// VehicleStore is the slice of the vehicles collection the handlers use.
type VehicleStore interface {
	All(ctx context.Context) ([]models.Vehicle, error)
	Latest(ctx context.Context, limit int64) ([]models.Vehicle, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	ByOwner(ctx context.Context, email string) ([]models.Vehicle, error)
	Insert(ctx context.Context, vehicle *models.Vehicle) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

type VehicleController struct {
	store VehicleStore
	cache *utils.Cache
}

func NewVehicleController(store VehicleStore, cache *utils.Cache) *VehicleController {
	return &VehicleController{store: store, cache: cache}
}

func (vc *VehicleController) ListVehicles(c echo.Context) error {
	vehicles, err := vc.store.All(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, vehicles)
}

func (vc *VehicleController) LatestVehicles(c echo.Context) error {
	ctx := c.Request().Context()

	var cached []models.Vehicle
	if hit, err := vc.cache.Get(ctx, latestCacheKey, &cached); err == nil && hit {
		return c.JSON(http.StatusOK, cached)
	}

	vehicles, err := vc.store.Latest(ctx, latestLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	vc.cache.Set(ctx, latestCacheKey, vehicles, latestCacheTTL)
	return c.JSON(http.StatusOK, vehicles)
}

// GetVehicle returns null (200) for a well-formed id with no document behind
// it; 404 is reserved for update and delete.
func (vc *VehicleController) GetVehicle(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid vehicle id"})
	}

	vehicle, err := vc.store.ByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, vehicle)
}

func (vc *VehicleController) MyVehicles(c echo.Context) error {
	email := c.Param("email")
	if email != c.Get("user_email").(string) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "unauthorized access"})
	}

	vehicles, err := vc.store.ByOwner(c.Request().Context(), email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, vehicles)
}

func (vc *VehicleController) CreateVehicle(c echo.Context) error {
	userEmail := c.Get("user_email").(string)

	var vehicle models.Vehicle
	if err := c.Bind(&vehicle); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if vehicle.UserEmail != userEmail {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "unauthorized access"})
	}

	vehicle.ID = primitive.NilObjectID
	vehicle.CreatedAt = time.Now().UTC()

	ctx := c.Request().Context()
	id, err := vc.store.Insert(ctx, &vehicle)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	vc.cache.Invalidate(ctx, latestCacheKey)
	return c.JSON(http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: id})
}

func (vc *VehicleController) UpdateVehicle(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid vehicle id"})
	}

	ctx := c.Request().Context()
	existing, err := vc.store.ByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if existing == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "vehicle not found"})
	}
	if existing.UserEmail != c.Get("user_email").(string) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "unauthorized access"})
	}

	var update models.Vehicle
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	// Fixed allow-list: _id, userEmail and createdAt stay as created.
	fields := bson.M{
		"vehicleName":  update.VehicleName,
		"owner":        update.Owner,
		"category":     update.Category,
		"pricePerDay":  update.PricePerDay,
		"location":     update.Location,
		"availability": update.Availability,
		"description":  update.Description,
		"coverImage":   update.CoverImage,
	}
	result, err := vc.store.Update(ctx, id, fields)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	vc.cache.Invalidate(ctx, latestCacheKey)
	return c.JSON(http.StatusOK, result)
}

func (vc *VehicleController) DeleteVehicle(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid vehicle id"})
	}

	ctx := c.Request().Context()
	existing, err := vc.store.ByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if existing == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "vehicle not found"})
	}
	if existing.UserEmail != c.Get("user_email").(string) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "unauthorized access"})
	}

	result, err := vc.store.Delete(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	vc.cache.Invalidate(ctx, latestCacheKey)
	return c.JSON(http.StatusOK, result)
}
