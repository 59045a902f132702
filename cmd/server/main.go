package main

import (
	"context"
	"log"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/config"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/container"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/server"

	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		container.Module,
		fx.Invoke(func(
			lc fx.Lifecycle,
			cfg *config.Config,
			srv *server.Server,
		) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					log.Printf("Starting Callbridge Sewa on port %s", cfg.Server.Port)

					// Start server in background
					go func() {
						if err := srv.Start(context.Background()); err != nil {
							log.Printf("Server error: %v", err)
						}
					}()

					return nil
				},
				OnStop: func(ctx context.Context) error {
					log.Println("Shutting down Callbridge Sewa")
					return srv.Stop()
				},
			})
		}),
	)

	app.Run()
}
