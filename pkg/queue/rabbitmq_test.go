package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPriority(t *testing.T) {
	assert.Equal(t, 0, clampPriority(-3))
	assert.Equal(t, 5, clampPriority(5))
	assert.Equal(t, 10, clampPriority(42))
}

func TestEventJSON(t *testing.T) {
	event := Event{
		Type:        EventSubscribed,
		ActorID:     "user-1",
		RecipientID: "channel-1",
		TargetID:    "channel-1",
		Priority:    3,
		OccurredAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "subscription.added", decoded["type"])
	assert.Equal(t, "user-1", decoded["actor_id"])
	assert.Equal(t, "channel-1", decoded["recipient_id"])
	assert.Equal(t, "2024-01-02T03:04:05Z", decoded["occurred_at"])
}
