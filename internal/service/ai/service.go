// Package ai wraps the eino chat chain that answers turns the intent
// matcher does not short-circuit.
package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/rahulverma-dev/finassist/backend/internal/config"
	"github.com/rahulverma-dev/finassist/backend/internal/model/chat"
)

const systemPrompt = "You are a concise personal finance assistant. You help " +
	"with SIPs, EMIs, budgeting, savings goals and general money questions. " +
	"Answer practically, state assumptions, and never present estimates as " +
	"guarantees."

// Service runs the chat-completion chain against the configured provider.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService builds the chat model and compiles the prompt chain.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{chatModel: chatModel, cfg: cfg, chain: runnable}, nil
}

// GenerateReply invokes the model with the bounded history as context and
// returns the assistant's reply text. The call blocks under the configured
// timeout; expiry surfaces as an ordinary error for the caller to handle.
func (s *Service) GenerateReply(ctx context.Context, history []chat.Message, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	response, err := s.chain.Invoke(ctx, map[string]any{
		"system":  systemPrompt,
		"history": historyMessages(history),
		"query":   query,
	})
	if err != nil {
		return "", fmt.Errorf("failed to run chat chain: %w", err)
	}

	log.Printf("[ai] model=%s replied, length=%d", s.cfg.Model, len(response.Content))
	return response.Content, nil
}

func historyMessages(history []chat.Message) []*schema.Message {
	if len(history) == 0 {
		return nil
	}

	messages := make([]*schema.Message, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case chat.RoleUser:
			messages = append(messages, schema.UserMessage(msg.Content))
		case chat.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(msg.Content, nil))
		}
	}
	return messages
}
