package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/OishiSharmeen04/TravelEase-server/config"
	"github.com/OishiSharmeen04/TravelEase-server/handlers"
	"github.com/OishiSharmeen04/TravelEase-server/routes"
	"github.com/OishiSharmeen04/TravelEase-server/store"
	"github.com/OishiSharmeen04/TravelEase-server/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	client, err := store.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("MongoDB connection error: %v", err)
	}
	log.Println("Connected to MongoDB!")
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)
	vehicles := store.NewVehicles(db, cfg.VehiclesColl)
	bookings := store.NewBookings(db, cfg.BookingsColl)
	users := store.NewUsers(db, cfg.UsersColl)

	cache := utils.NewCache(cfg.RedisAddr, cfg.RedisPassword)
	auth := utils.NewJWTAuth(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Validator = utils.NewValidator()

	routes.Register(e, routes.Controllers{
		Vehicles: handlers.NewVehicleController(vehicles, cache),
		Bookings: handlers.NewBookingController(bookings),
		Users:    handlers.NewUserController(users, auth),
		Verifier: auth,
	})

	log.Printf("Server running on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
