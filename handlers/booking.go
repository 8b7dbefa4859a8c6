package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/OishiSharmeen04/TravelEase-server/models"
)

// BookingStore is the slice of the bookings collection the handlers use.
type BookingStore interface {
	Insert(ctx context.Context, booking models.Booking) (primitive.ObjectID, error)
	ByOwner(ctx context.Context, email string) ([]models.Booking, error)
}

type BookingController struct {
	store BookingStore
}

func NewBookingController(store BookingStore) *BookingController {
	return &BookingController{store: store}
}

func (bc *BookingController) CreateBooking(c echo.Context) error {
	userEmail := c.Get("user_email").(string)

	var booking models.Booking
	if err := c.Bind(&booking); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if email, _ := booking["userEmail"].(string); email != userEmail {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "unauthorized access"})
	}

	delete(booking, "_id")
	booking["createdAt"] = time.Now().UTC().Format(time.RFC3339)

	id, err := bc.store.Insert(c.Request().Context(), booking)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: id})
}

func (bc *BookingController) MyBookings(c echo.Context) error {
	email := c.Param("email")
	if email != c.Get("user_email").(string) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "unauthorized access"})
	}

	bookings, err := bc.store.ByOwner(c.Request().Context(), email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, bookings)
}
