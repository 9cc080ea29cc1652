package commands

import (
	"fmt"
	"time"

	"sjsage522/zenlesscollector/logger"

	"github.com/spf13/cobra"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Fetch the active codes now and then once per interval",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("interval") {
			if watchInterval <= 0 {
				return fmt.Errorf("interval must be positive, got %s", watchInterval)
			}
			cfg.WatchInterval = watchInterval
		}

		services, err := initializeServices(cfg)
		if err != nil {
			return err
		}
		defer services.Cleanup()

		logger.ForWorker().Info().
			Dur("interval", cfg.WatchInterval).
			Str("store", services.Store.Name()).
			Msg("Watching for new codes")

		return services.Worker.Start(cmd.Context())
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 30*time.Minute, "time between fetch actions")
	rootCmd.AddCommand(watchCmd)
}
