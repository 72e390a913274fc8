package parser

import (
	"strconv"
	"strings"

	"cv-agent-go/internal/types"
)

// ExperienceContribution 单条经历对总年限的贡献明细
// 显式记录跳过原因，调用方可以区分"没有数据"和"解析失败"
type ExperienceContribution struct {
	Index   int  // 条目下标
	Years   int  // 该条贡献的年数，可能为负
	Counted bool // 是否计入总数
}

// CalculateExperienceYears 由工作经历的日期范围推算总年限
// 每条取前两个日期token的末尾空白分隔词解析为年份，两个都解析成功才计入
// 单条的负贡献不做截断，只对总数取下限0
func CalculateExperienceYears(entries []types.ExperienceEntry) (int, []ExperienceContribution) {
	total := 0
	contributions := make([]ExperienceContribution, 0, len(entries))

	for i, entry := range entries {
		contrib := ExperienceContribution{Index: i}
		if len(entry.Dates) >= 2 {
			startYear, okStart := trailingYear(entry.Dates[0])
			endYear, okEnd := trailingYear(entry.Dates[1])
			if okStart && okEnd {
				contrib.Years = endYear - startYear
				contrib.Counted = true
				total += contrib.Years
			}
		}
		contributions = append(contributions, contrib)
	}

	if total < 0 {
		total = 0
	}
	return total, contributions
}

// trailingYear 取日期token末尾的空白分隔词并解析为整数年份
func trailingYear(dateToken string) (int, bool) {
	fields := strings.Fields(dateToken)
	if len(fields) == 0 {
		return 0, false
	}
	year, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, false
	}
	return year, true
}
