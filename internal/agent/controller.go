package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pitstopd/pitstop/internal/adapter/llm"
	"github.com/pitstopd/pitstop/internal/domain"
	"github.com/pitstopd/pitstop/internal/tools"
)

// Controller runs one chat turn: a model call, at most one domain
// operation, then a final model call. The single-operation-per-turn rule
// is a turn-scoped flag; once it is set the model is invoked without
// operation specs, which forces a plain natural-language reply.
type Controller struct {
	client         llm.Client
	registry       *tools.Registry
	sessions       *SessionStore
	rawToolReplies bool
	logger         *zap.Logger
}

// NewController creates a dispatch controller. With rawToolReplies set,
// a turn that executed an operation answers with the raw operation
// result instead of the model's paraphrase of it.
func NewController(client llm.Client, registry *tools.Registry, sessions *SessionStore, rawToolReplies bool, logger *zap.Logger) *Controller {
	return &Controller{
		client:         client,
		registry:       registry,
		sessions:       sessions,
		rawToolReplies: rawToolReplies,
		logger:         logger,
	}
}

// Chat processes one user message in the given session and returns the
// turn's reply. The turn is only committed to the session history when it
// completes; a failed model call leaves the history untouched.
func (c *Controller) Chat(ctx context.Context, sessionID, message string) (string, error) {
	sess := c.sessions.get(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	turn := []domain.Message{{Role: domain.RoleUser, Content: message}}
	toolUsed := false
	lastToolResult := ""

	for {
		var specs []llm.ToolSpec
		if !toolUsed {
			specs = c.registry.Specs()
		}
		history := append(sess.snapshot(), turn...)

		reply, err := c.client.Chat(ctx, systemPrompt, history, specs)
		if err != nil {
			return "", fmt.Errorf("model call failed: %w", err)
		}

		if reply.ToolCall != nil && !toolUsed {
			call := reply.ToolCall
			c.logger.Info("executing operation",
				zap.String("session_id", sessionID),
				zap.String("operation", call.Name))

			result, execErr := c.registry.Execute(ctx, call.Name, tools.Args(call.Args))
			if execErr != nil {
				// Reported back to the model in-band so the turn still
				// ends with a coherent reply.
				c.logger.Warn("operation failed",
					zap.String("operation", call.Name),
					zap.Error(execErr))
				result = fmt.Sprintf("Operation %s failed: %v.", call.Name, execErr)
			}
			turn = append(turn,
				domain.Message{Role: domain.RoleAssistant, ToolName: call.Name, ToolArgs: call.Args},
				domain.Message{Role: domain.RoleTool, ToolName: call.Name, Content: result},
			)
			toolUsed = true
			lastToolResult = result
			continue
		}

		out := reply.Text
		if toolUsed && c.rawToolReplies && lastToolResult != "" {
			out = lastToolResult
		}
		sess.append(append(turn, domain.Message{Role: domain.RoleAssistant, Content: reply.Text})...)
		return out, nil
	}
}

// ClearHistory resets the session's history.
func (c *Controller) ClearHistory(sessionID string) {
	c.sessions.Clear(sessionID)
}
