package main

import (
	"context"
	"log"

	"briefbot/orchestrator"
)

func main() {
	if err := orchestrator.RunOnce(context.Background()); err != nil {
		log.Fatalf("orchestrator run failed: %v", err)
	}
}
