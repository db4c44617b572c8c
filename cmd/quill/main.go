package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/MrSnakeDoc/quill/internal/app"
)

func main() {
	// Local dev convenience, ignored when no .env file exists
	_ = godotenv.Load()

	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ quill failed to start: %v", err)
	}
}
