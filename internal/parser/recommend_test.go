package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-agent-go/internal/types"
)

func recommendationTexts(recs []types.Recommendation) []string {
	texts := make([]string, 0, len(recs))
	for _, r := range recs {
		texts = append(texts, r.Text)
	}
	return texts
}

func containsSubstring(texts []string, substr string) bool {
	for _, t := range texts {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}

// TestGenerateRecommendationsEmptyProfile 验证空档案的建议组合
// 基准分50：应有自由职业建议和课程建议，没有技能和证书相关的建议
func TestGenerateRecommendationsEmptyProfile(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills:        types.SkillsTaxonomy{Categories: map[types.SkillCategory][]string{}},
		AptitudeScore: 50,
	}

	recs := GenerateRecommendations(profile)
	texts := recommendationTexts(recs)

	assert.True(t, containsSubstring(texts, "freelance"), "经验不足3年应建议自由职业")
	assert.True(t, containsSubstring(texts, "courses"), "分数低于70应建议课程")
	assert.False(t, containsSubstring(texts, "strengthening"), "无技能时不应有强化技能的建议")
	assert.False(t, containsSubstring(texts, "certifications"), "无证书时不应有证书相关建议")
	assert.Len(t, recs, 2)
}

// TestGenerateRecommendationsAllRules 验证规则互不排斥、全部命中时都返回
func TestGenerateRecommendationsAllRules(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills: types.SkillsTaxonomy{
			Categories: map[types.SkillCategory][]string{
				types.CatProgrammingLanguages: {"Python"},
			},
		},
		Certifications:  []types.Certification{{Name: "PMP"}},
		ExperienceYears: 1,
		AptitudeScore:   60,
	}

	recs := GenerateRecommendations(profile)
	require.Len(t, recs, 4, "四条规则全部命中时应返回四条建议")

	texts := recommendationTexts(recs)
	assert.True(t, containsSubstring(texts, "Python"), "技能建议应列出已归类的技能")
}

// TestGenerateRecommendationsCompetitive 验证无规则命中时的正向评价
func TestGenerateRecommendationsCompetitive(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills:          types.SkillsTaxonomy{Categories: map[types.SkillCategory][]string{}},
		ExperienceYears: 5,
		AptitudeScore:   85,
	}

	recs := GenerateRecommendations(profile)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0].Text, "competitive")
}

// TestGenerateRecommendationsTimestamp 验证建议带生成时间戳
func TestGenerateRecommendationsTimestamp(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills: types.SkillsTaxonomy{Categories: map[types.SkillCategory][]string{}},
	}
	recs := GenerateRecommendations(profile)
	for _, rec := range recs {
		assert.False(t, rec.GeneratedAt.IsZero(), "生成时间戳不应为零值")
	}
}
