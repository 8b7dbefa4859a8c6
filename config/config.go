package config

import (
	"os"
	"strconv"
)

// Config holds everything read from the environment at startup. A .env file,
// if present, is loaded by main before this runs.
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	VehiclesColl   string
	BookingsColl   string
	UsersColl      string
	JWTSecret      string
	JWTExpiryHours int
	RedisAddr      string
	RedisPassword  string
}

func Load() Config {
	return Config{
		Port:           getenv("PORT", "5000"),
		MongoURI:       getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGODB_DB", "travelEaseDB"),
		VehiclesColl:   getenv("MONGODB_COLLECTION_VEHICLES", "vehicles"),
		BookingsColl:   getenv("MONGODB_COLLECTION_BOOKINGS", "bookings"),
		UsersColl:      getenv("MONGODB_COLLECTION_USERS", "users"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiryHours: getenvInt("JWT_EXPIRY_HOURS", 24),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
