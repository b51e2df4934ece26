package tutor_module

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/ethanbaker/sparky/internal/tutor"
	"github.com/ethanbaker/sparky/pkg/generation"
	"github.com/ethanbaker/sparky/pkg/history"
	"github.com/ethanbaker/sparky/pkg/prompts"
	"github.com/ethanbaker/sparky/pkg/utils"
	"github.com/ethanbaker/sparky/pkg/video"
)

// Service is the behavior the HTTP handlers need from the tutor
type Service interface {
	Summarize(ctx context.Context, rawURL string) (*tutor.Summary, error)
	Chat(ctx context.Context, in tutor.ChatInput) (*tutor.Reply, error)
}

var (
	mu      sync.RWMutex
	service Service

	// Resources released by Shutdown
	historyStore *history.Store
	backend      generation.Backend
)

/** ---- INIT ---- */

// Init builds the tutor service from configuration
func Init(ctx context.Context, cfg *utils.Config) error {
	// Create generation backend
	genCfg := generation.ConfigFromEnv(cfg)
	gen, err := generation.NewBackend(ctx, genCfg)
	if err != nil {
		return fmt.Errorf("failed to create generation backend: %w", err)
	}

	// Create history store
	store, err := history.NewStore(history.Options{
		MaxSessions:   cfg.GetIntWithDefault("HISTORY_MAX_SESSIONS", history.DefaultMaxSessions),
		IdleTTL:       cfg.GetDurationWithDefault("HISTORY_IDLE_TTL", history.DefaultIdleTTL),
		SweepSchedule: cfg.GetWithDefault("HISTORY_SWEEP_SCHEDULE", history.DefaultSweepSchedule),
	})
	if err != nil {
		gen.Close()
		return fmt.Errorf("failed to create history store: %w", err)
	}
	store.Start()

	retriever := video.NewRetriever(video.NewYouTubeProvider(cfg.GetWithDefault("TRANSCRIPT_LANGUAGE", "en")))
	templates := prompts.LoadWithFallback(cfg.Get("PROMPTS_PATH"))
	window := cfg.GetIntWithDefault("HISTORY_WINDOW", history.DefaultWindow)

	mu.Lock()
	defer mu.Unlock()

	service = tutor.NewService(retriever, generation.NewClient(gen), store, templates, window)
	historyStore = store
	backend = gen

	log.Printf("[TUTOR]: Initialized with provider %s, model %s", genCfg.Provider, genCfg.Model)

	return nil
}

// SetService replaces the service used by the handlers
func SetService(s Service) {
	mu.Lock()
	defer mu.Unlock()
	service = s
}

// GetService returns the service used by the handlers
func GetService() Service {
	mu.RLock()
	defer mu.RUnlock()

	if service == nil {
		log.Fatal("[TUTOR]: Service is not initialized")
	}
	return service
}

// Shutdown stops background work and releases the generation backend
func Shutdown() {
	mu.Lock()
	defer mu.Unlock()

	if historyStore != nil {
		historyStore.Stop()
		historyStore = nil
	}

	if backend != nil {
		if err := backend.Close(); err != nil {
			log.Printf("[TUTOR]: Warning, failed to close generation backend: %v", err)
		}
		backend = nil
	}
}
