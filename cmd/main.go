package main

import (
	"context"

	"go-clinic-workflow/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize application with all dependencies
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	ctx := context.Background()
	if err := app.Seed(ctx); err != nil {
		logrus.Fatalf("Failed to seed store: %v", err)
	}

	board, err := app.Reception.DoctorBoard(ctx)
	if err != nil {
		logrus.Fatalf("Failed to read doctor board: %v", err)
	}
	for _, d := range board {
		logrus.Infof("Doctor %s (%s) at %s, %d waiting", d.Name, d.ID, d.Location, d.WaitingCount)
	}

	logrus.Info("Clinic workflow engine ready")
}
