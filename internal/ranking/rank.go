package ranking

import (
	"sort"

	"github.com/jonathan/career-compass/internal/types"
)

// TopN is the default number of recommendations returned to the caller.
// Shorter catalogs return everything available; the ranker never pads.
const TopN = 3

func (e *Engine) limit() int {
	if e.Limit > 0 {
		return e.Limit
	}
	return TopN
}

// RecommendCareers scores every catalog career against a general profile and
// returns the top results sorted by match score descending. The sort is
// stable, so ties keep catalog order.
func (e *Engine) RecommendCareers(profile *types.Profile, careers []types.Career) []types.Recommendation {
	recommendations := make([]types.Recommendation, 0, len(careers))
	for i := range careers {
		career := &careers[i]
		score := e.ScoreCareer(profile, career)
		recommendations = append(recommendations, types.Recommendation{
			Career:         career,
			MatchScore:     score.MatchScore,
			MissingSkills:  score.MissingSkills,
			StrengthSkills: score.StrengthSkills,
			Reasoning:      generalReasoning(profile, score),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	if n := e.limit(); len(recommendations) > n {
		recommendations = recommendations[:n]
	}
	return recommendations
}

// RecommendPaths applies the eligibility gate, scores the surviving career
// paths against a student profile, and returns the top results. Roadmaps and
// scholarships are attached by the advisor layer, not here.
func (e *Engine) RecommendPaths(profile *types.Profile, paths []types.CareerPath) []types.StudentRecommendation {
	recommendations := make([]types.StudentRecommendation, 0, len(paths))
	for i := range paths {
		path := &paths[i]
		if !Eligible(profile, path) {
			continue
		}
		score := e.ScorePath(profile, path)
		recommendations = append(recommendations, types.StudentRecommendation{
			CareerPath: path,
			MatchScore: score.MatchScore,
			Reasoning:  studentReasoning(profile, path, score),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	if n := e.limit(); len(recommendations) > n {
		recommendations = recommendations[:n]
	}
	return recommendations
}
