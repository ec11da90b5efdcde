package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/internal/server"
	"github.com/jwebster45206/adventure-engine/internal/services"
	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/item"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func main() {
	plain := flag.Bool("plain", false, "use a line-based prompt instead of the full-screen console")
	flag.Parse()

	os.Exit(run(*plain))
}

func run(plain bool) int {
	cfg := config.Load()
	log, closer := logger.Setup(cfg)
	defer func() {
		_ = closer.Close()
	}()

	log.Info("Adventure starting", "environment", cfg.Environment, "model", cfg.OllamaModel)

	w, catalog, err := loadData(cfg)
	if err != nil {
		logger.WithError(log, err).Error("Failed to load game data")
		fmt.Fprintf(os.Stderr, "💥 Fatal error: %v\n", err)
		return 1
	}

	player, err := actor.NewPlayer(w.StartRoom())
	if err != nil {
		logger.WithError(log, err).Error("Failed to create player")
		fmt.Fprintf(os.Stderr, "💥 Fatal error: %v\n", err)
		return 1
	}

	narrator, cache := setupNarrator(cfg, log)
	if cache != nil {
		defer func() {
			_ = cache.Close()
		}()
	}

	eng := engine.New(w, catalog, player, narrator, engine.Options{
		MaxTokens:   cfg.NarrationMaxTokens,
		Temperature: cfg.NarrationTemperature,
		Timeout:     cfg.NarrationTimeout,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		srv := server.NewServer(cfg.MetricsAddr, narrator, cache, log)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("Ops server shutdown failed", "error", err)
			}
		}()
	}

	narrationReady := narrator != nil && narrator.IsAvailable(ctx)
	if !narrationReady {
		log.Warn("Narrator not available, fights will use simple responses")
	}

	if plain {
		runPlain(ctx, eng, os.Stdin, os.Stdout, narrationReady)
	} else {
		p := tea.NewProgram(NewConsoleUI(ctx, eng, narrationReady),
			tea.WithAltScreen(),
			tea.WithContext(ctx))
		if _, err := p.Run(); err != nil && ctx.Err() == nil {
			logger.WithError(log, err).Error("Console failed")
			fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
			return 1
		}
	}

	log.Info("Adventure ended", "session_id", eng.SessionID())
	return 0
}

// loadData builds the world and item catalog from configured files, falling
// back to the embedded defaults.
func loadData(cfg *config.Config) (*world.World, *item.Catalog, error) {
	var (
		w   *world.World
		c   *item.Catalog
		err error
	)

	if cfg.WorldFile != "" {
		w, err = world.LoadFile(cfg.WorldFile)
	} else {
		w, err = world.Default()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load world: %w", err)
	}

	if cfg.ItemsFile != "" {
		c, err = item.LoadFile(cfg.ItemsFile)
	} else {
		c, err = item.Default()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load items: %w", err)
	}
	return w, c, nil
}

// setupNarrator wires the Ollama client behind the configured cache. The
// returned cache is nil when caching is disabled or Redis is unreachable.
func setupNarrator(cfg *config.Config, log *slog.Logger) (services.LLMService, services.Cache) {
	ollama := services.NewOllamaService(cfg.OllamaHost, cfg.OllamaModel, cfg.NarrationTimeout, log)

	var cache services.Cache
	switch cfg.NarrationCache {
	case config.CacheMemory:
		cache = services.NewMemoryCache(cfg.NarrationCacheSize, cfg.NarrationCacheTTL)
	case config.CacheRedis:
		redisCache, err := services.NewRedisService(cfg.RedisURL, cfg.NarrationCacheTTL, log)
		if err != nil {
			logger.WithError(log, err).Warn("Redis unavailable, narration will not be cached")
			return ollama, nil
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := redisCache.Ping(pingCtx); err != nil {
			logger.WithError(log, err).Warn("Redis unavailable, narration will not be cached")
			_ = redisCache.Close()
			return ollama, nil
		}
		cache = redisCache
	default:
		return ollama, nil
	}

	log.Debug("Narration cache enabled", "backend", cfg.NarrationCache, "ttl", cfg.NarrationCacheTTL)
	return services.NewCachedLLM(ollama, cache, cfg.NarrationCacheTTL, log), cache
}
