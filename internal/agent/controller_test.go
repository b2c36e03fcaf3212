package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/pitstopd/pitstop/internal/adapter/llm"
	"github.com/pitstopd/pitstop/internal/domain"
	"github.com/pitstopd/pitstop/internal/tools"
)

func newTestController(t *testing.T, rawToolReplies bool, historyLimit int) (*Controller, *llm.MockClient, *SessionStore) {
	t.Helper()
	registry := tools.NewRegistry()
	registry.MustRegister(llm.ToolSpec{Name: "echo_op"}, func(ctx context.Context, args tools.Args) (string, error) {
		return "OP RESULT", nil
	})
	registry.MustRegister(llm.ToolSpec{Name: "broken_op"}, func(ctx context.Context, args tools.Args) (string, error) {
		return "", fmt.Errorf("boom")
	})
	client := llm.NewMockClient()
	sessions := NewSessionStore(historyLimit)
	return NewController(client, registry, sessions, rawToolReplies, zap.NewNop()), client, sessions
}

func TestTurnWithOperation(t *testing.T) {
	c, client, sessions := newTestController(t, true, 20)
	client.Enqueue(&llm.Reply{ToolCall: &llm.ToolCall{Name: "echo_op", Args: map[string]any{"q": "x"}}})
	client.Enqueue(&llm.Reply{Text: "paraphrased answer"})

	out, err := c.Chat(context.Background(), "s1", "book me something")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	// Raw-tool-result policy wins over the model's paraphrase.
	if out != "OP RESULT" {
		t.Fatalf("unexpected reply %q", out)
	}

	calls := client.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 model calls, got %d", len(calls))
	}
	// First call binds the operations, the follow-up call must not.
	if len(calls[0].Tools) == 0 {
		t.Fatal("first model call had no operations bound")
	}
	if len(calls[1].Tools) != 0 {
		t.Fatal("follow-up model call still had operations bound")
	}

	history := sessions.History("s1")
	if len(history) != 4 {
		t.Fatalf("expected 4 committed messages, got %d", len(history))
	}
	if history[0].Role != domain.RoleUser ||
		history[1].ToolName != "echo_op" ||
		history[2].Role != domain.RoleTool ||
		history[3].Role != domain.RoleAssistant {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestTurnWithoutOperation(t *testing.T) {
	c, client, sessions := newTestController(t, true, 20)
	client.Enqueue(&llm.Reply{Text: "hello there"})

	out, err := c.Chat(context.Background(), "s1", "hi")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if out != "hello there" {
		t.Fatalf("unexpected reply %q", out)
	}
	if got := len(sessions.History("s1")); got != 2 {
		t.Fatalf("expected 2 committed messages, got %d", got)
	}
}

func TestRawToolRepliesDisabled(t *testing.T) {
	c, client, _ := newTestController(t, false, 20)
	client.Enqueue(&llm.Reply{ToolCall: &llm.ToolCall{Name: "echo_op"}})
	client.Enqueue(&llm.Reply{Text: "the model's summary"})

	out, err := c.Chat(context.Background(), "s1", "go")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if out != "the model's summary" {
		t.Fatalf("unexpected reply %q", out)
	}
}

func TestModelErrorDiscardsTurn(t *testing.T) {
	c, client, sessions := newTestController(t, true, 20)
	client.Enqueue(&llm.Reply{Text: "committed turn"})
	if _, err := c.Chat(context.Background(), "s1", "first"); err != nil {
		t.Fatalf("chat failed: %v", err)
	}

	client.EnqueueError(errors.New("upstream down"))
	if _, err := c.Chat(context.Background(), "s1", "second"); err == nil {
		t.Fatal("expected error")
	}

	// The failed turn left no trace.
	history := sessions.History("s1")
	if len(history) != 2 || history[0].Content != "first" {
		t.Fatalf("history corrupted by failed turn: %+v", history)
	}
}

func TestFailingOperationReportedInBand(t *testing.T) {
	c, client, sessions := newTestController(t, false, 20)
	client.Enqueue(&llm.Reply{ToolCall: &llm.ToolCall{Name: "broken_op"}})
	client.Enqueue(&llm.Reply{Text: "sorry, that did not work"})

	out, err := c.Chat(context.Background(), "s1", "go")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if out != "sorry, that did not work" {
		t.Fatalf("unexpected reply %q", out)
	}
	history := sessions.History("s1")
	if len(history) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(history))
	}
	if history[2].Role != domain.RoleTool || history[2].Content == "" {
		t.Fatalf("missing in-band failure message: %+v", history[2])
	}
}

func TestUnknownOperationReportedInBand(t *testing.T) {
	c, client, _ := newTestController(t, false, 20)
	client.Enqueue(&llm.Reply{ToolCall: &llm.ToolCall{Name: "no_such_op"}})
	client.Enqueue(&llm.Reply{Text: "done"})

	out, err := c.Chat(context.Background(), "s1", "go")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if out != "done" {
		t.Fatalf("unexpected reply %q", out)
	}
	if len(client.Calls()) != 2 {
		t.Fatalf("expected 2 model calls, got %d", len(client.Calls()))
	}
}

func TestHistoryBounded(t *testing.T) {
	c, client, sessions := newTestController(t, true, 4)
	for i := 0; i < 3; i++ {
		client.Enqueue(&llm.Reply{Text: fmt.Sprintf("reply %d", i)})
		if _, err := c.Chat(context.Background(), "s1", fmt.Sprintf("msg %d", i)); err != nil {
			t.Fatalf("chat failed: %v", err)
		}
	}
	history := sessions.History("s1")
	if len(history) != 4 {
		t.Fatalf("expected capped history of 4, got %d", len(history))
	}
	// Oldest turn was trimmed first.
	if history[0].Content != "msg 1" {
		t.Fatalf("unexpected oldest message: %+v", history[0])
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	c, client, sessions := newTestController(t, true, 20)
	client.Enqueue(&llm.Reply{Text: "for s1"})
	client.Enqueue(&llm.Reply{Text: "for s2"})

	if _, err := c.Chat(context.Background(), "s1", "hello from one"); err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if _, err := c.Chat(context.Background(), "s2", "hello from two"); err != nil {
		t.Fatalf("chat failed: %v", err)
	}

	if got := len(sessions.History("s1")); got != 2 {
		t.Fatalf("expected 2 messages in s1, got %d", got)
	}
	if sessions.History("s2")[0].Content != "hello from two" {
		t.Fatalf("cross-session leak: %+v", sessions.History("s2"))
	}

	c.ClearHistory("s1")
	if got := len(sessions.History("s1")); got != 0 {
		t.Fatalf("expected cleared history, got %d messages", got)
	}
	if got := len(sessions.History("s2")); got != 2 {
		t.Fatalf("clear leaked across sessions, got %d", got)
	}
}
