package contest

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/alex-pricope/festival-results/storage"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type TeamScore struct {
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName"`
	Total    int    `json:"total"`
}

// ScoreBoard recomputes live scores from storage on every read. Concurrent
// reads share one computation, but a read only joins a computation that has
// not started loading yet, so it always sees writes committed before it.
type ScoreBoard struct {
	results  storage.ResultStorage
	students storage.StudentStorage
	teams    storage.TeamStorage
	rules    ScoringRules
	flight   singleflight.Group

	mu   sync.Mutex
	next uint64 // generation of the next computation to start
}

func NewScoreBoard(stores *storage.Stores, rules ScoringRules) *ScoreBoard {
	return &ScoreBoard{
		results:  stores.Results,
		students: stores.Students,
		teams:    stores.Teams,
		rules:    rules,
	}
}

// LiveScores returns every team ordered by total, highest first, ties by
// name.
func (b *ScoreBoard) LiveScores(ctx context.Context) ([]TeamScore, error) {
	b.mu.Lock()
	gen := b.next
	b.mu.Unlock()

	ch := b.flight.DoChan(strconv.FormatUint(gen, 10), func() (interface{}, error) {
		// Callers arriving from here on start a new generation.
		b.mu.Lock()
		if b.next == gen {
			b.next++
		}
		b.mu.Unlock()
		return b.compute(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		shared := res.Val.([]TeamScore)
		return append([]TeamScore(nil), shared...), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (b *ScoreBoard) compute(ctx context.Context) ([]TeamScore, error) {
	var (
		approved []*storage.Result
		students []*storage.Student
		teams    []*storage.Team
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		approved, err = b.results.GetByStatus(gctx, storage.StatusApproved)
		return err
	})
	g.Go(func() error {
		var err error
		students, err = b.students.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = b.teams.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load score inputs: %w", err)
	}

	in := ScoreInput{
		Results:      approved,
		StudentTeams: make(map[string]string, len(students)),
		TeamIDs:      make([]string, 0, len(teams)),
	}
	for _, s := range students {
		in.StudentTeams[s.ID] = s.TeamID
	}
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		in.TeamIDs = append(in.TeamIDs, t.ID)
		names[t.ID] = t.Name
	}

	totals := ComputeLiveScores(b.rules, in)
	scores := make([]TeamScore, 0, len(totals))
	for id, total := range totals {
		name, ok := names[id]
		if !ok {
			name = id
		}
		scores = append(scores, TeamScore{TeamID: id, TeamName: name, Total: total})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Total != scores[j].Total {
			return scores[i].Total > scores[j].Total
		}
		if scores[i].TeamName != scores[j].TeamName {
			return scores[i].TeamName < scores[j].TeamName
		}
		return scores[i].TeamID < scores[j].TeamID
	})
	return scores, nil
}

// Totals is LiveScores keyed by team id.
func (b *ScoreBoard) Totals(ctx context.Context) (map[string]int, error) {
	scores, err := b.LiveScores(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(scores))
	for _, s := range scores {
		out[s.TeamID] = s.Total
	}
	return out, nil
}
