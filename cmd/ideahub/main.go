package main

import (
	"log"

	"github.com/MrSnakeDoc/ideahub/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ ideahub failed to start: %v", err)
	}
}
