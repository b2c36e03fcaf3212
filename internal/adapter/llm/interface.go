// Package llm provides an abstraction over the language model backing
// the assistant.
package llm

import (
	"context"

	"github.com/pitstopd/pitstop/internal/domain"
)

// ToolParam describes one parameter of an operation exposed to the model.
type ToolParam struct {
	Name        string
	Description string
	Required    bool
}

// ToolSpec describes one operation the model may request.
type ToolSpec struct {
	Name        string
	Description string
	Params      []ToolParam
}

// ToolCall is the model's request to run one operation.
type ToolCall struct {
	Name string
	Args map[string]any
}

// Reply is the model's answer for one call: final text, or a request to
// run one operation. Callers branch on ToolCall being set.
type Reply struct {
	Text     string
	ToolCall *ToolCall
}

// Client is the model-call boundary: messages in, one tagged reply out.
// An empty tools slice forces a plain natural-language reply.
type Client interface {
	Chat(ctx context.Context, system string, history []domain.Message, tools []ToolSpec) (*Reply, error)
}
