package contest

import "github.com/alex-pricope/festival-results/storage"

// ScoringRules maps placements and grades to points.
type ScoringRules struct {
	Placement  map[storage.Section]map[int]int
	GradeBonus map[storage.Grade]int
}

func DefaultScoringRules() ScoringRules {
	return ScoringRules{
		Placement: map[storage.Section]map[int]int{
			storage.SectionSingle: {1: 5, 2: 3, 3: 1},
			storage.SectionGroup:  {1: 10, 2: 7, 3: 5},
		},
		GradeBonus: map[storage.Grade]int{
			storage.GradeA:    5,
			storage.GradeB:    3,
			storage.GradeC:    1,
			storage.GradeNone: 0,
		},
	}
}

// EntryPoints is the placement value plus the grade bonus. A grade of none
// still earns the placement value.
func (r ScoringRules) EntryPoints(section storage.Section, position int, grade storage.Grade) int {
	return r.Placement[section][position] + r.GradeBonus[grade]
}

// ScoreInput is everything ComputeLiveScores needs. StudentTeams maps a
// student id to its team id; TeamIDs lists every team that must appear in the
// output even without results.
type ScoreInput struct {
	Results      []*storage.Result
	StudentTeams map[string]string
	TeamIDs      []string
}

// ComputeLiveScores sums placement and grade points of every approved result
// per team and subtracts each penalty. It has no side effects and the totals
// do not depend on the order of Results. Totals may be negative.
func ComputeLiveScores(rules ScoringRules, in ScoreInput) map[string]int {
	totals := make(map[string]int, len(in.TeamIDs))
	for _, id := range in.TeamIDs {
		totals[id] = 0
	}

	studentTeam := func(id string) (string, bool) {
		t, ok := in.StudentTeams[id]
		return t, ok && t != ""
	}

	for _, r := range in.Results {
		if r == nil || r.Status != storage.StatusApproved {
			continue
		}

		for _, e := range r.Entries {
			team, ok := e.CandidateID, true
			if r.Section != storage.SectionGroup {
				team, ok = studentTeam(e.CandidateID)
			}
			if !ok {
				continue
			}
			totals[team] += rules.EntryPoints(r.Section, e.Position, e.Grade)
		}

		for _, p := range r.Penalties {
			team, ok := p.TargetID, true
			if p.Target == storage.PenaltyTargetStudent {
				team, ok = studentTeam(p.TargetID)
			}
			if !ok {
				continue
			}
			totals[team] -= p.Points
		}
	}
	return totals
}
