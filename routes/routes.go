package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OishiSharmeen04/TravelEase-server/handlers"
	"github.com/OishiSharmeen04/TravelEase-server/middleware"
	"github.com/OishiSharmeen04/TravelEase-server/utils"
)

// Controllers groups everything route registration needs.
type Controllers struct {
	Vehicles *handlers.VehicleController
	Bookings *handlers.BookingController
	Users    *handlers.UserController
	Verifier utils.TokenVerifier
}

type route struct {
	method    string
	path      string
	handler   echo.HandlerFunc
	protected bool
}

// Register binds the full route table. One table, one auth middleware; a
// route is protected by flipping its flag, not by copying a registration.
func Register(e *echo.Echo, c Controllers) {
	table := []route{
		{http.MethodGet, "/", handlers.HealthCheck, false},
		{http.MethodGet, "/vehicles", c.Vehicles.ListVehicles, false},
		{http.MethodGet, "/vehicles/latest", c.Vehicles.LatestVehicles, false},
		{http.MethodGet, "/vehicles/:id", c.Vehicles.GetVehicle, false},
		{http.MethodGet, "/my-vehicles/:email", c.Vehicles.MyVehicles, true},
		{http.MethodPost, "/vehicles", c.Vehicles.CreateVehicle, true},
		{http.MethodPut, "/vehicles/:id", c.Vehicles.UpdateVehicle, true},
		{http.MethodDelete, "/vehicles/:id", c.Vehicles.DeleteVehicle, true},
		{http.MethodPost, "/bookings", c.Bookings.CreateBooking, true},
		{http.MethodGet, "/my-bookings/:email", c.Bookings.MyBookings, true},
		{http.MethodPost, "/auth/register", c.Users.Register, false},
		{http.MethodPost, "/auth/login", c.Users.Login, false},
	}

	auth := middleware.RequireAuth(c.Verifier)
	for _, r := range table {
		if r.protected {
			e.Add(r.method, r.path, r.handler, auth)
		} else {
			e.Add(r.method, r.path, r.handler)
		}
	}
}
