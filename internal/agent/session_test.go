package agent

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitstopd/pitstop/internal/domain"
)

func TestSessionStoreCreatesOnDemand(t *testing.T) {
	store := NewSessionStore(20)
	assert.Empty(t, store.History("unknown"))

	sess := store.get("s1")
	sess.append(domain.Message{Role: domain.RoleUser, Content: "hi"})
	assert.Len(t, store.History("s1"), 1)
	assert.Empty(t, store.History("s2"))
}

func TestSessionAppendTrimsOldest(t *testing.T) {
	store := NewSessionStore(5)
	sess := store.get("s1")
	for i := 0; i < 8; i++ {
		sess.append(domain.Message{Role: domain.RoleUser, Content: fmt.Sprintf("m%d", i)})
	}

	history := store.History("s1")
	assert.Len(t, history, 5)
	assert.Equal(t, "m3", history[0].Content)
	assert.Equal(t, "m7", history[4].Content)
}

func TestSessionHistoryIsACopy(t *testing.T) {
	store := NewSessionStore(20)
	sess := store.get("s1")
	sess.append(domain.Message{Role: domain.RoleUser, Content: "original"})

	history := store.History("s1")
	history[0].Content = "mutated"
	assert.Equal(t, "original", store.History("s1")[0].Content)
}

func TestSessionClear(t *testing.T) {
	store := NewSessionStore(20)
	store.get("s1").append(domain.Message{Role: domain.RoleUser, Content: "hi"})
	store.get("s2").append(domain.Message{Role: domain.RoleUser, Content: "yo"})

	store.Clear("s1")
	assert.Empty(t, store.History("s1"))
	assert.Len(t, store.History("s2"), 1)

	// Clearing an unknown session is a no-op, not a panic.
	store.Clear("never-seen")
}
