package main

import (
	"log"
	"net/http"
	"os"

	"briefbot/api"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := api.NewRouter()
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/cluster")
	log.Println("  POST /api/duplicates")
	log.Println("  POST /api/duplicates/collapse")
	log.Println("  GET  /api/feeds")
	log.Println("  POST /api/feeds/fetch")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
