// Command viewer follows the festival realtime stream and redraws the live
// scoreboard whenever results or scores change.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alex-pricope/festival-results/contest"
	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/realtime"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/cenkalti/backoff.v1"
)

type options struct {
	server    string
	quiet     time.Duration
	reconnect time.Duration
	logLevel  string
}

func main() {
	var opts options
	flag.StringVar(&opts.server, "server", "http://localhost:8080", "festival results API base URL")
	flag.DurationVar(&opts.quiet, "quiet", 500*time.Millisecond, "quiet window between scoreboard refreshes")
	flag.DurationVar(&opts.reconnect, "reconnect", 3*time.Second, "delay before reconnecting a dropped stream")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "log level")
	flag.Parse()

	logging.BoostrapLogger(opts.logLevel, false)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, http.DefaultClient, os.Stdout); err != nil {
		logging.Log.Fatalf("VIEWER: %v", err)
	}
}

func run(ctx context.Context, opts options, client *http.Client, out io.Writer) error {
	base := strings.TrimRight(opts.server, "/")
	board := realtime.NewRefreshCoordinator(ctx, "viewer", opts.quiet, func(ctx context.Context) error {
		scores, err := fetchScores(ctx, client, base)
		if err != nil {
			return err
		}
		render(out, scores, time.Now())
		return nil
	}, nil)

	streamOpts := realtime.StreamOptions{
		Client:    client,
		Channels:  []realtime.Channel{realtime.ChannelResults, realtime.ChannelScoreboard},
		Reconnect: backoff.NewConstantBackOff(opts.reconnect),
		// Redraw on every connect to catch up on anything missed
		OnConnect: board.Trigger,
	}
	for {
		err := realtime.Stream(ctx, base+"/api/realtime", streamOpts, func(ev realtime.Event) {
			logging.Log.Debugf("VIEWER: %s (seq %d)", ev.Name(), ev.Seq)
			board.Trigger()
		})
		if ctx.Err() != nil {
			board.Wait()
			return nil
		}
		if err != nil {
			return err
		}

		// Server closed the stream cleanly
		logging.Log.Warnf("VIEWER: stream closed by server, reconnecting in %s", opts.reconnect)
		select {
		case <-time.After(opts.reconnect):
		case <-ctx.Done():
			board.Wait()
			return nil
		}
	}
}

func fetchScores(ctx context.Context, client *http.Client, base string) ([]contest.TeamScore, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/api/scores", nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch scores: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch scores: %s", resp.Status)
	}

	var scores []contest.TeamScore
	if err := json.NewDecoder(resp.Body).Decode(&scores); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	return scores, nil
}

func render(out io.Writer, scores []contest.TeamScore, at time.Time) {
	color.New(color.FgCyan).Fprintf(out, "\n=== Live Scoreboard (%s) ===\n", at.Format("15:04:05"))
	if len(scores) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No teams yet")
		return
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Rank", "Team", "Points"})
	rank := 0
	for i, s := range scores {
		// Tied teams share a rank
		if i == 0 || s.Total != scores[i-1].Total {
			rank = i + 1
		}
		table.Append([]string{fmt.Sprintf("%d", rank), s.TeamName, fmt.Sprintf("%d", s.Total)})
	}
	table.Render()
}
