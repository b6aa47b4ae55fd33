package realtime

import (
	"testing"
	"time"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T, buffer int) *Hub {
	t.Helper()
	logging.Log = logrus.New()
	return NewHub(buffer, metrics.New(prometheus.NewRegistry()))
}

func receive(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case ev := <-sub.C:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHubDeliversToChannelSubscribers(t *testing.T) {
	hub := newTestHub(t, 8)

	results, err := hub.Subscribe(ChannelResults)
	require.NoError(t, err)
	defer results.Close()
	students, err := hub.Subscribe(ChannelStudents)
	require.NoError(t, err)
	defer students.Close()

	require.NoError(t, hub.Publish(ChannelResults, KindApproved))

	ev := receive(t, results)
	assert.Equal(t, ChannelResults, ev.Channel)
	assert.Equal(t, KindApproved, ev.Kind)
	assert.Equal(t, "results.approved", ev.Name())
	assert.Len(t, students.C, 0, "students subscriber should not see results events")
}

func TestHubRejectsUnknownPairs(t *testing.T) {
	hub := newTestHub(t, 1)

	assert.ErrorIs(t, hub.Publish("trophies", KindCreated), ErrUnknownChannel)
	assert.ErrorIs(t, hub.Publish(ChannelScoreboard, KindDeleted), ErrUnknownEvent)
	assert.ErrorIs(t, hub.Publish(ChannelAssignments, KindUpdated), ErrUnknownEvent)

	_, err := hub.Subscribe("trophies")
	assert.ErrorIs(t, err, ErrUnknownChannel)
}

func TestHubPreservesOrderWithinChannel(t *testing.T) {
	hub := newTestHub(t, 16)
	sub, err := hub.Subscribe(ChannelResults)
	require.NoError(t, err)
	defer sub.Close()

	kinds := []Kind{KindSubmitted, KindApproved, KindUpdated, KindDeleted}
	for _, k := range kinds {
		require.NoError(t, hub.Publish(ChannelResults, k))
	}

	var last uint64
	for _, want := range kinds {
		ev := receive(t, sub)
		assert.Equal(t, want, ev.Kind)
		assert.Greater(t, ev.Seq, last)
		last = ev.Seq
	}
}

func TestHubDropsWhenBufferFull(t *testing.T) {
	hub := newTestHub(t, 1)
	sub, err := hub.Subscribe(ChannelScoreboard)
	require.NoError(t, err)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			_ = hub.Publish(ChannelScoreboard, KindUpdated)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
	assert.Len(t, sub.C, 1)
}

func TestSubscriptionCloseUnsubscribes(t *testing.T) {
	hub := newTestHub(t, 1)
	sub, err := hub.Subscribe()
	require.NoError(t, err)
	assert.Equal(t, 1, hub.SubscriberCount())

	sub.Close()
	sub.Close()
	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-sub.C
	assert.False(t, open)
	assert.NoError(t, hub.Publish(ChannelResults, KindSubmitted))
}
