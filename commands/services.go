package commands

import (
	"fmt"

	"sjsage522/zenlesscollector/config"
	"sjsage522/zenlesscollector/helpers"
	"sjsage522/zenlesscollector/internal/collector"
	"sjsage522/zenlesscollector/logger"
	"sjsage522/zenlesscollector/services/cache"
	"sjsage522/zenlesscollector/services/notifier"
	"sjsage522/zenlesscollector/services/publisher"
	"sjsage522/zenlesscollector/services/worker"
)

// Services holds all the initialized services
type Services struct {
	Config    *config.Config
	Store     cache.CodeStore
	Publisher publisher.Publisher
	Notifier  notifier.Notifier
	Worker    *worker.Worker

	closers []func() error
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			logger.Warn("Failed to close service: %v", err)
		}
	}
}

// loadConfig loads and validates the configuration
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// initializeServices initializes all required services
func initializeServices(cfg *config.Config) (*Services, error) {
	services := &Services{Config: cfg}

	store, err := newStore(cfg, services)
	if err != nil {
		return nil, err
	}
	services.Store = store
	logger.Info("Using %s snapshot store", store.Name())

	if cfg.PublishEnabled {
		redisPublisher := publisher.NewRedisPublisher(
			cfg.RedisAddr,
			cfg.RedisDB,
			cfg.RedisStream,
			cfg.RedisStreamMaxLength,
		)
		services.Publisher = redisPublisher
		services.closers = append(services.closers, redisPublisher.Close)

		logger.Info("Publishing new codes to Redis at %s (DB: %d, Stream: %s)",
			cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)
	}

	if cfg.NotifyEnabled() {
		telegramNotifier, err := notifier.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID, cfg.CurrencyName)
		if err != nil {
			services.Cleanup()
			return nil, err
		}
		services.Notifier = telegramNotifier
		logger.Info("Notifying new codes to Telegram chat %d", cfg.TelegramChatID)
	}

	c := collector.New(collector.Options{
		URL:           cfg.SourceURL,
		TableSelector: cfg.TableSelector,
		Currency:      cfg.CurrencyName,
		UserAgent:     cfg.UserAgent,
		Timeout:       cfg.FetchTimeout,
	})

	services.Worker = worker.NewWorker(
		c,
		services.Store,
		services.Publisher,
		services.Notifier,
		helpers.NewLogger("worker"),
		cfg.WatchInterval,
	)

	return services, nil
}

// newStore creates the configured snapshot store
func newStore(cfg *config.Config, services *Services) (cache.CodeStore, error) {
	switch cfg.StoreBackend {
	case config.StoreFile:
		return cache.NewFileStore(cfg.CacheFile), nil
	case config.StoreMemcache:
		return cache.NewKVStore(config.StoreMemcache, cache.NewMemcacheService(cfg.MemcacheAddr), cfg.CacheKey), nil
	case config.StoreRedis:
		redisService := cache.NewRedisService(cfg.RedisAddr, cfg.RedisDB)
		services.closers = append(services.closers, redisService.Close)
		return cache.NewKVStore(config.StoreRedis, redisService, cfg.CacheKey), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// setup loads configuration and initializes services for a command
func setup() (*Services, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger.ForComponent("app").Info().
		Str("environment", cfg.Environment).
		Str("config", cfg.String()).
		Msg("Starting application")

	return initializeServices(cfg)
}
