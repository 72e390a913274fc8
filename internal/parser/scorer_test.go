package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cv-agent-go/internal/types"
)

// TestScoreProfileEmpty 验证完全空白的提取结果得基准分50
func TestScoreProfileEmpty(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills: types.SkillsTaxonomy{Categories: map[types.SkillCategory][]string{}},
	}
	assert.Equal(t, 50, ScoreProfile(profile))
}

// TestScoreProfileWeights 验证各维度的加权与上限
func TestScoreProfileWeights(t *testing.T) {
	profile := &types.CandidateProfile{
		Experience:      make([]types.ExperienceEntry, 2), // 2×10 = 20
		ExperienceYears: 3,                                // 3×2 = 6
		Certifications:  make([]types.Certification, 1),   // 1×5 = 5
		Projects:        make([]types.Project, 1),         // 1×3 = 3
		Languages:       make([]types.LanguageSkill, 1),   // 1×3 = 3
		Skills: types.SkillsTaxonomy{
			Categories: map[types.SkillCategory][]string{
				types.CatProgrammingLanguages: {"Python", "Go"}, // 2×2 = 4
			},
		},
	}
	assert.Equal(t, 50+20+6+5+3+3+4, ScoreProfile(profile))
}

// TestScoreProfileCaps 验证每个维度的贡献上限与总分上限
func TestScoreProfileCaps(t *testing.T) {
	profile := &types.CandidateProfile{
		Experience:      make([]types.ExperienceEntry, 10), // 上限30
		ExperienceYears: 50,                                // 上限20
		Certifications:  make([]types.Certification, 10),   // 上限15
		Projects:        make([]types.Project, 10),         // 上限10
		Languages:       make([]types.LanguageSkill, 10),   // 上限10
		Skills: types.SkillsTaxonomy{
			Categories: map[types.SkillCategory][]string{
				types.CatTools: {"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, // 上限15
			},
		},
	}
	// 50+30+20+15+10+15+10 = 150，截断到100
	assert.Equal(t, 100, ScoreProfile(profile))
}
