package parser

import (
	"github.com/rs/zerolog"

	"cv-agent-go/internal/types"
)

// HeuristicParser 启发式档案解析器
// 把已通过前置校验的文本分解成结构化的候选人档案
// 单个章节提取器失败只降级该章节，不中断整个档案的生成
type HeuristicParser struct {
	logger zerolog.Logger
}

// NewHeuristicParser 创建档案解析器
func NewHeuristicParser(logger zerolog.Logger) *HeuristicParser {
	return &HeuristicParser{
		logger: logger.With().Str("component", "heuristic_parser").Logger(),
	}
}

// Parse 对全文执行全部章节提取器并汇总成档案
// 失败的章节记入Degraded列表，对应字段保留降级哨兵或空值
func (p *HeuristicParser) Parse(documentUUID, text string) *types.CandidateProfile {
	profile := &types.CandidateProfile{
		DocumentUUID: documentUUID,
		TextLength:   len([]rune(text)),
	}

	p.runSection(profile, "contact", func() {
		profile.Contact = ExtractContactInfo(text)
	}, func() {
		profile.Contact = degradedContact()
	})

	p.runSection(profile, "experience", func() {
		profile.Experience = ExtractWorkExperience(text)
	}, nil)

	p.runSection(profile, "education", func() {
		profile.Education = ExtractEducation(text)
	}, nil)

	p.runSection(profile, "certifications", func() {
		profile.Certifications = ExtractCertifications(text)
	}, nil)

	p.runSection(profile, "projects", func() {
		profile.Projects = ExtractProjects(text)
	}, nil)

	p.runSection(profile, "languages", func() {
		profile.Languages = ExtractLanguages(text)
	}, nil)

	p.runSection(profile, "skills", func() {
		profile.Skills = CategorizeSkills(text)
		profile.FlatSkills = ExtractFlatSkills(text)
	}, func() {
		profile.Skills = types.SkillsTaxonomy{Categories: make(map[types.SkillCategory][]string)}
	})

	p.runSection(profile, "experience_years", func() {
		years, _ := CalculateExperienceYears(profile.Experience)
		profile.ExperienceYears = years
	}, nil)

	profile.AptitudeScore = ScoreProfile(profile)
	return profile
}

// runSection 执行单个章节提取器，panic时记录降级而不向上传播
func (p *HeuristicParser) runSection(profile *types.CandidateProfile, name string, extract func(), fallback func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn().
				Str("section", name).
				Interface("panic", r).
				Msg("章节提取器失败，该章节降级处理")
			profile.Degraded = append(profile.Degraded, name)
			if fallback != nil {
				fallback()
			}
		}
	}()
	extract()
}

// degradedContact 联系方式提取失败时的降级占位
func degradedContact() types.ContactInfo {
	return types.ContactInfo{
		Name:     types.SentinelProcessingError,
		Email:    types.SentinelProcessingError,
		Phone:    types.SentinelProcessingError,
		Location: types.SentinelProcessingError,
		LinkedIn: types.SentinelProcessingError,
		GitHub:   types.SentinelProcessingError,
	}
}
