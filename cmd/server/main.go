// Command server runs the S.I.M.A. backend HTTP server.
package main

import (
	"context"
	"log"

	"github.com/sima-app/sima-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
