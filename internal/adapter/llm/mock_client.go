package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/pitstopd/pitstop/internal/domain"
)

// Call records one invocation of the mock client.
type Call struct {
	System  string
	History []domain.Message
	Tools   []ToolSpec
}

type scripted struct {
	reply *Reply
	err   error
}

// MockClient is a scripted implementation of Client for testing. Queued
// replies are returned in order; with an empty queue it echoes the last
// user message.
type MockClient struct {
	mu      sync.Mutex
	queue   []scripted
	calls   []Call
}

// NewMockClient creates a new mock model client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements Client interface.
var _ Client = (*MockClient)(nil)

// Enqueue appends a reply to the script.
func (m *MockClient) Enqueue(reply *Reply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, scripted{reply: reply})
}

// EnqueueError appends a failing call to the script.
func (m *MockClient) EnqueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, scripted{err: err})
}

// Calls returns the recorded invocations.
func (m *MockClient) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Chat pops the next scripted reply, or echoes the last user message when
// the script is exhausted.
func (m *MockClient) Chat(ctx context.Context, system string, history []domain.Message, tools []ToolSpec) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := make([]domain.Message, len(history))
	copy(snapshot, history)
	m.calls = append(m.calls, Call{System: system, History: snapshot, Tools: tools})

	if len(m.queue) > 0 {
		next := m.queue[0]
		m.queue = m.queue[1:]
		if next.err != nil {
			return nil, next.err
		}
		return next.reply, nil
	}

	var lastUser string
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == domain.RoleUser {
			lastUser = history[i].Content
			break
		}
	}
	return &Reply{Text: fmt.Sprintf("[MOCK] Received your message: %q.", lastUser)}, nil
}
