package cmd

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/its-aleezA/cpu-scheduling-simulator/api"
	"github.com/its-aleezA/cpu-scheduling-simulator/config"
)

// NewApp builds the fiber application with every scheduler route mounted.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New()
	api.RegisterRoutes(app.Group("/api"), api.NewSchedulerHandlerImpl(cfg))
	return app
}

func newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduler over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetSchedulerConfig()
			if port == 0 {
				port = cfg.Port
			}
			app := NewApp(cfg)
			log.Println("listening on port", port)
			return app.Listen(fmt.Sprintf(":%d", port))
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (defaults to config)")
	return cmd
}
