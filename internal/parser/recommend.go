package parser

import (
	"fmt"
	"strings"
	"time"

	"cv-agent-go/internal/types"
)

// GenerateRecommendations 基于完整档案生成改进建议
// 规则按固定顺序评估且互不排斥，全部命中的建议都返回
// 没有任何规则命中时返回一条正向评价
func GenerateRecommendations(profile *types.CandidateProfile) []types.Recommendation {
	now := time.Now()
	var recs []types.Recommendation

	if terms := profile.Skills.AllTerms(); len(terms) > 0 {
		recs = append(recs, types.Recommendation{
			Text:        fmt.Sprintf("Consider strengthening these skills: %s", strings.Join(terms, ", ")),
			Priority:    types.PriorityMedium,
			GeneratedAt: now,
		})
	}

	if len(profile.Certifications) > 0 {
		recs = append(recs, types.Recommendation{
			Text:        "You have certifications, consider adding more relevant ones to your field",
			Priority:    types.PriorityLow,
			GeneratedAt: now,
		})
	}

	if profile.ExperienceYears < 3 {
		recs = append(recs, types.Recommendation{
			Text:        "Consider gaining more experience through freelance or project work",
			Priority:    types.PriorityHigh,
			GeneratedAt: now,
		})
	}

	if profile.AptitudeScore < 70 {
		recs = append(recs, types.Recommendation{
			Text:        "Improve your profile with courses and personal projects",
			Priority:    types.PriorityHigh,
			GeneratedAt: now,
		})
	}

	if len(recs) == 0 {
		recs = append(recs, types.Recommendation{
			Text:        "Your profile is already competitive, keep it up to date",
			Priority:    types.PriorityLow,
			GeneratedAt: now,
		})
	}

	return recs
}
