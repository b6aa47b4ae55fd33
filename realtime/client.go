package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/r3labs/sse/v2"
	"gopkg.in/cenkalti/backoff.v1"
)

// streamBufferSize bounds a single SSE line.
const streamBufferSize = 1 << 20

type StreamOptions struct {
	Client   *http.Client
	Channels []Channel
	// Reconnect is the retry policy for refused or dropped connections. Nil
	// means the first failure is returned.
	Reconnect backoff.BackOff
	// OnConnect runs after every successful (re)connect, before any event of
	// that connection is delivered.
	OnConnect func()
}

// Stream connects to a server-sent event endpoint and calls onEvent for every
// event until ctx is cancelled, the server closes the stream, or the
// reconnect policy gives up.
func Stream(ctx context.Context, endpoint string, opts StreamOptions, onEvent func(Event)) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parse realtime endpoint: %w", err)
	}
	q := u.Query()
	for _, c := range opts.Channels {
		q.Add("channel", string(c))
	}
	u.RawQuery = q.Encode()

	client := sse.NewClient(u.String(), sse.ClientMaxBufferSize(streamBufferSize))
	if opts.Client != nil {
		client.Connection = opts.Client
	}
	client.ReconnectStrategy = opts.Reconnect
	if client.ReconnectStrategy == nil {
		client.ReconnectStrategy = &backoff.StopBackOff{}
	}
	client.ReconnectNotify = func(err error, next time.Duration) {
		logging.Log.Warnf("REALTIME: stream to %s dropped, retrying in %s: %v", u.Host, next, err)
	}
	client.ResponseValidator = func(_ *sse.Client, resp *http.Response) error {
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return fmt.Errorf("realtime stream returned %s", resp.Status)
		}
		if opts.OnConnect != nil {
			opts.OnConnect()
		}
		return nil
	}

	err = client.SubscribeRawWithContext(ctx, func(msg *sse.Event) {
		if len(msg.Data) == 0 {
			return
		}
		var ev Event
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			logging.Log.Debugf("REALTIME: skipping malformed event %q: %v", msg.Event, err)
			return
		}
		onEvent(ev)
	})
	if ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("realtime stream: %w", err)
	}
	return nil
}
