package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every runtime setting of the service.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Memory MemoryConfig
	Store  StoreConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	memory := loadMemoryConfig()

	storeCfg, err := loadStoreConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Memory: memory, Store: storeCfg}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if _, err := strconv.Atoi(port); err != nil {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// supportedModels is the fixed allow-list of chat model identifiers. The
// value marks whether the provider still serves the model; deprecated
// entries are accepted with a selection-time warning.
var supportedModels = map[string]bool{
	"qwen/qwen3-32b":     true,
	"llama3-70b-8192":    true,
	"gemma-7b-it":        true,
	"mixtral-8x7b-32768": false,
}

// DefaultModel is used when GROQ_MODEL is unset.
const DefaultModel = "qwen/qwen3-32b"

const defaultBaseURL = "https://api.groq.com/openai/v1"

// AIConfig describes the chat-completion provider.
type AIConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   *int
	Timeout     time.Duration

	// Deprecated flags a model that is allow-listed but no longer served;
	// the operator gets a warning at startup rather than a call-time failure.
	Deprecated bool
}

// Enabled reports whether a credential is configured. Without one the
// assistant skips turns instead of attempting the external call.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// NewChatModel builds the eino chat model against the OpenAI-compatible
// endpoint.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("missing GROQ_API_KEY")
	}

	temperature := float32(c.Temperature)

	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     c.BaseURL,
		APIKey:      c.APIKey,
		Model:       c.Model,
		Temperature: &temperature,
		MaxTokens:   c.MaxTokens,
		Timeout:     c.Timeout,
	})
}

func loadAIConfig() (AIConfig, error) {
	modelID := getEnvOrDefault("GROQ_MODEL", DefaultModel)
	served, known := supportedModels[modelID]
	if !known {
		return AIConfig{}, fmt.Errorf("unsupported GROQ_MODEL %q", modelID)
	}

	temperature := 0.7
	if override, err := parseOptionalFloatEnv("GROQ_TEMPERATURE"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		temperature = *override
	}
	if temperature < 0 || temperature > 1 {
		return AIConfig{}, fmt.Errorf("GROQ_TEMPERATURE must be in [0,1], got %g", temperature)
	}

	maxTokens, err := parseOptionalIntEnv("GROQ_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	timeout, err := parseTimeoutEnv("AI_TIMEOUT_SECONDS", 30*time.Second)
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		Model:       modelID,
		BaseURL:     getEnvOrDefault("GROQ_BASE_URL", defaultBaseURL),
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Timeout:     timeout,
		Deprecated:  !served,
	}, nil
}

// MemoryConfig locates the local conversation file.
type MemoryConfig struct {
	Path string
}

func loadMemoryConfig() MemoryConfig {
	return MemoryConfig{Path: getEnvOrDefault("MEMORY_FILE", "memory.json")}
}

// StoreConfig describes the remote document store.
type StoreConfig struct {
	ProjectID string
	UseMemory bool
	Timeout   time.Duration
}

func loadStoreConfig() (StoreConfig, error) {
	useMemory, err := parseBoolEnv("USE_MEMORY_STORE", false)
	if err != nil {
		return StoreConfig{}, err
	}

	timeout, err := parseTimeoutEnv("STORE_TIMEOUT_SECONDS", 5*time.Second)
	if err != nil {
		return StoreConfig{}, err
	}

	projectID := strings.TrimSpace(os.Getenv("GOOGLE_CLOUD_PROJECT"))
	if !useMemory && projectID == "" {
		// No project configured means no Firestore to talk to; fall back so
		// the chat loop still works with local state only.
		useMemory = true
	}

	return StoreConfig{ProjectID: projectID, UseMemory: useMemory, Timeout: timeout}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseTimeoutEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	seconds, err := parseOptionalIntEnv(key)
	if err != nil {
		return 0, err
	}
	if seconds == nil {
		return defaultValue, nil
	}
	if *seconds <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, *seconds)
	}
	return time.Duration(*seconds) * time.Second, nil
}
