package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr          string
	GRPCAddr          string
	Location          *time.Location
	LowStockThreshold int
	ReportTopN        int
	JWTSecret         string
	TokenTTL          time.Duration
	SeedProducts      bool
	AdminPassword     string
	CashierPassword   string
	KitchenPassword   string
	GinMode           string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v := getenv(k, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("[config] %s=%q is not a non-negative integer, using %d", k, v, def)
		return def
	}
	return n
}

func getbool(k string, def bool) bool {
	v := getenv(k, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[config] %s=%q is not a boolean, using %t", k, v, def)
		return def
	}
	return b
}

func getduration(k string, def time.Duration) time.Duration {
	v := getenv(k, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[config] %s=%q is not a positive duration, using %s", k, v, def)
		return def
	}
	return d
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists

	tz := getenv("POS_TIMEZONE", "Local")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("[config] POS_TIMEZONE=%q unknown, using Local", tz)
		loc = time.Local
	}
	cfg := Config{
		HTTPAddr:          getenv("POS_HTTP_ADDR", ":8080"),
		GRPCAddr:          getenv("POS_GRPC_ADDR", ":50051"),
		Location:          loc,
		LowStockThreshold: getint("LOW_STOCK_THRESHOLD", 20),
		ReportTopN:        getint("REPORT_TOP_N", 5),
		JWTSecret:         getenv("JWT_SECRET", "change-me"),
		TokenTTL:          getduration("TOKEN_TTL", 12*time.Hour),
		SeedProducts:      getbool("SEED_PRODUCTS", true),
		AdminPassword:     getenv("ADMIN_PASSWORD", "admin123"),
		CashierPassword:   getenv("CASHIER_PASSWORD", "cashier123"),
		KitchenPassword:   getenv("KITCHEN_PASSWORD", "kitchen123"),
		GinMode:           getenv("GIN_MODE", "release"),
	}
	if cfg.ReportTopN == 0 {
		cfg.ReportTopN = 5
	}
	log.Printf("[config] POS_HTTP_ADDR=%s", cfg.HTTPAddr)
	log.Printf("[config] POS_GRPC_ADDR=%s", cfg.GRPCAddr)
	log.Printf("[config] POS_TIMEZONE=%s", cfg.Location)
	log.Printf("[config] LOW_STOCK_THRESHOLD=%d REPORT_TOP_N=%d", cfg.LowStockThreshold, cfg.ReportTopN)
	log.Printf("[config] TOKEN_TTL=%s SEED_PRODUCTS=%t GIN_MODE=%s", cfg.TokenTTL, cfg.SeedProducts, cfg.GinMode)
	if cfg.JWTSecret == "change-me" {
		log.Printf("[config] JWT_SECRET not set, using the development default")
	}
	return cfg
}
