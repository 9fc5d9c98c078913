package scoring

import (
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/scout2retire/town-match/internal/types"
)

// Rank scores one user against every town and returns the results sorted
// best-first. Each (user, town) pair is independent, so towns are scored in
// parallel; only the final sort imposes an order. Ties on overall score
// break by hobbies sub-score, then region sub-score, then town ID so the
// output is deterministic.
func Rank(prefs *types.UserPreferences, towns []types.TownProfile, weights *Weights) ([]types.MatchResult, error) {
	// Validate configuration once up front so a bad weight table fails the
	// whole batch instead of every town individually.
	w := DefaultWeights()
	if weights != nil {
		w = *weights
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	results := make([]types.MatchResult, len(towns))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range towns {
		g.Go(func() error {
			r, err := Score(prefs, &towns[i], &w)
			if err != nil {
				return err
			}
			results[i] = *r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.OverallScore != b.OverallScore {
			return a.OverallScore > b.OverallScore
		}
		if a.CategoryScores.Hobbies != b.CategoryScores.Hobbies {
			return a.CategoryScores.Hobbies > b.CategoryScores.Hobbies
		}
		if a.CategoryScores.Region != b.CategoryScores.Region {
			return a.CategoryScores.Region > b.CategoryScores.Region
		}
		return strings.Compare(a.TownID.String(), b.TownID.String()) < 0
	})

	return results, nil
}
