package parser

import (
	"cv-agent-go/internal/types"
)

// 评分模型的各项权重与上限
const (
	scoreBase = 50

	expEntryWeight = 10
	expEntryCap    = 30

	expYearWeight = 2
	expYearCap    = 20

	certWeight = 5
	certCap    = 15

	projectWeight = 3
	projectCap    = 10

	skillWeight = 2
	skillCap    = 15

	languageWeight = 3
	languageCap    = 10
)

// ScoreProfile 计算候选人的综合评分
// 基准50分，各维度加权后设上限，最终结果截断到[0,100]
// 完全空白的提取结果得50分
func ScoreProfile(profile *types.CandidateProfile) int {
	score := scoreBase
	score += capped(len(profile.Experience)*expEntryWeight, expEntryCap)
	score += capped(profile.ExperienceYears*expYearWeight, expYearCap)
	score += capped(len(profile.Certifications)*certWeight, certCap)
	score += capped(len(profile.Projects)*projectWeight, projectCap)
	score += capped(profile.Skills.TotalSkillCount()*skillWeight, skillCap)
	score += capped(len(profile.Languages)*languageWeight, languageCap)

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func capped(value, max int) int {
	if value > max {
		return max
	}
	return value
}
