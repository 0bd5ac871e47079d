package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"algowoo/internal/auth"
	"algowoo/internal/config"
)

// Prints an admin bearer token for the /api/v1 admin routes.
func main() {
	subject := flag.String("subject", "admin", "subject the token is issued to")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	token, err := auth.New(cfg.AdminJWTSecret).Issue(*subject, *ttl)
	if err != nil {
		log.Fatal("Failed to issue token:", err)
	}
	fmt.Println(token)
}
