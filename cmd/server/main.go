package main

import (
	"log"

	_ "taskapi/docs"
	"taskapi/internal/config"
	"taskapi/internal/server"
)

// @title           Task API
// @version         1.0
// @description     Minimal task-tracking CRUD API.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
