package realtime

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/cenkalti/backoff.v1"
)

func TestStreamParsesServerSentEvents(t *testing.T) {
	var gotChannels []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotChannels = r.URL.Query()["channel"]
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "event:results.approved\ndata:{\"seq\":1,\"channel\":\"results\",\"kind\":\"approved\"}\n\n")
		fmt.Fprint(w, ": keepalive\n\n")
		fmt.Fprint(w, "event:scoreboard.updated\ndata: {\"seq\":2,\"channel\":\"scoreboard\",\"kind\":\"updated\"}\n\n")
	}))
	defer srv.Close()

	var events []Event
	err := Stream(context.Background(), srv.URL, StreamOptions{
		Client:   srv.Client(),
		Channels: []Channel{ChannelResults, ChannelScoreboard},
	}, func(ev Event) {
		events = append(events, ev)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"results", "scoreboard"}, gotChannels)
	require.Len(t, events, 2)
	assert.Equal(t, "results.approved", events[0].Name())
	assert.Equal(t, uint64(2), events[1].Seq)
}

func TestStreamReportsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := Stream(context.Background(), srv.URL, StreamOptions{Client: srv.Client()}, func(Event) {})
	assert.Error(t, err)
}

func TestStreamJoinsMultiLineData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "id: 7\nevent: results.updated\ndata: {\"seq\":7,\ndata: \"channel\":\"results\",\"kind\":\"updated\"}\n\n")
	}))
	defer srv.Close()

	var events []Event
	err := Stream(context.Background(), srv.URL, StreamOptions{Client: srv.Client()}, func(ev Event) {
		events = append(events, ev)
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "results.updated", events[0].Name())
	assert.Equal(t, uint64(7), events[0].Seq)
}

func TestStreamReconnectsAfterRefusal(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "event:results.approved\ndata:{\"seq\":1,\"channel\":\"results\",\"kind\":\"approved\"}\n\n")
	}))
	defer srv.Close()

	var connects int
	var events []Event
	err := Stream(context.Background(), srv.URL, StreamOptions{
		Client:    srv.Client(),
		Reconnect: backoff.NewConstantBackOff(10 * time.Millisecond),
		OnConnect: func() { connects++ },
	}, func(ev Event) {
		events = append(events, ev)
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), attempts.Load())
	assert.Equal(t, 1, connects)
	require.Len(t, events, 1)
}
