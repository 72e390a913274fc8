package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cv-agent-go/internal/types"
)

// TestCalculateExperienceYears 验证日期范围推算年限
func TestCalculateExperienceYears(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Dates: []string{"Enero 2015", "Enero 2019"}}, // +4
		{Dates: []string{"Marzo 2020", "Junio 2022"}}, // +2
	}

	total, contribs := CalculateExperienceYears(entries)
	assert.Equal(t, 6, total)
	assert.Len(t, contribs, 2)
	assert.True(t, contribs[0].Counted)
	assert.Equal(t, 4, contribs[0].Years)
}

// TestCalculateExperienceYearsParseFailure 验证解析失败的条目被显式跳过
func TestCalculateExperienceYearsParseFailure(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Dates: []string{"Enero 2020", "Presente"}}, // 末尾词不是年份
		{Dates: []string{"Enero 2018", "Enero 2021"}},
	}

	total, contribs := CalculateExperienceYears(entries)
	assert.Equal(t, 3, total, "只有两端都解析成功的条目计入")
	assert.False(t, contribs[0].Counted, "解析失败的条目应标记为未计入")
	assert.True(t, contribs[1].Counted)
}

// TestCalculateExperienceYearsSingleDate 验证日期不足两个的条目不计入
func TestCalculateExperienceYearsSingleDate(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Dates: []string{"Enero 2020"}},
		{Dates: nil},
	}
	total, contribs := CalculateExperienceYears(entries)
	assert.Equal(t, 0, total)
	assert.False(t, contribs[0].Counted)
	assert.False(t, contribs[1].Counted)
}

// TestCalculateExperienceYearsNegativeAggregate 验证负的单条贡献不截断、总数取下限0
func TestCalculateExperienceYearsNegativeAggregate(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Dates: []string{"Enero 2020", "Enero 2015"}}, // -5，逆序日期
		{Dates: []string{"Enero 2010", "Enero 2014"}}, // +4
	}

	total, contribs := CalculateExperienceYears(entries)
	assert.Equal(t, 0, total, "总和-1应被下限0截断")
	assert.Equal(t, -5, contribs[0].Years, "单条的负贡献本身不做截断")
	assert.True(t, contribs[0].Counted)
}
