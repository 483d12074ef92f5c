package main

import (
	"log"

	"fyne-tool/internal/app"
	"fyne-tool/internal/settings"
)

func main() {
	config := settings.Load()

	mirror, pipeline, err := app.NewLogging(config)
	if err != nil {
		log.Fatalf("Logging initialization failed: %v", err)
	}

	pipeline.Headline("INITIALIZE")

	application, err := app.NewApplication(config, mirror, pipeline)
	if err != nil {
		pipeline.Error("Main", err, nil)
		_ = pipeline.Close()
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
