package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/joho/godotenv"

	"github.com/rahulverma-dev/finassist/backend/internal/config"
	"github.com/rahulverma-dev/finassist/backend/internal/handler"
	"github.com/rahulverma-dev/finassist/backend/internal/memory"
	"github.com/rahulverma-dev/finassist/backend/internal/service/ai"
	"github.com/rahulverma-dev/finassist/backend/internal/service/assistant"
	goalservice "github.com/rahulverma-dev/finassist/backend/internal/service/goals"
	"github.com/rahulverma-dev/finassist/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if cfg.AI.Deprecated {
		log.Printf("warning: model %s is deprecated and may be rejected by the provider; choose another one", cfg.AI.Model)
	}

	// Remote document store: Firestore in deployment, in-memory otherwise.
	var remoteStore store.Store
	if cfg.Store.UseMemory {
		log.Println("using in-memory document store")
		remoteStore = store.NewMemoryStore()
	} else {
		firestoreClient, err := firestore.NewClient(ctx, cfg.Store.ProjectID)
		if err != nil {
			log.Fatalf("failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()
		remoteStore = store.NewFirestoreStore(firestoreClient)
	}

	memoryStore := memory.NewStore(cfg.Memory.Path, remoteStore, cfg.Store.Timeout)

	// The assistant runs without a model when no credential is configured;
	// chat turns are then skipped rather than failed.
	var responder assistant.Responder
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without model access - chat turns will be skipped")
		} else {
			log.Printf("AI service initialized with model %s", cfg.AI.Model)
			responder = aiService
		}
	} else {
		log.Println("GROQ_API_KEY not configured, chat turns will be skipped")
	}

	assistantSvc := assistant.NewService(memoryStore, responder)
	goalSvc := goalservice.NewService(remoteStore, cfg.Store.Timeout)

	router := handler.NewRouter(assistantSvc, goalSvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("finassist backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
