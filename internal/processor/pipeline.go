package processor

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"cv-agent-go/internal/config"
	"cv-agent-go/internal/constants"
	"cv-agent-go/internal/extractor"
	"cv-agent-go/internal/parser"
	"cv-agent-go/internal/types"
	"cv-agent-go/pkg/utils"
)

// Pipeline 文档到档案的提取流水线
// 单文档同步执行：格式检测、文本提取、长度校验、去重、语言门禁、结构化解析、评分、建议
// 多个文档可由各自的流水线实例并发处理，唯一的共享状态是去重集合
type Pipeline struct {
	extractor  TextExtractor
	detector   LanguageDetector
	parser     ProfileParser
	dedupGuard DedupGuard
	cfg        *config.PipelineConfig
	logger     zerolog.Logger
}

// PipelineOption 流水线的可选配置
type PipelineOption func(*Pipeline)

// WithTextExtractor 替换文本提取器
func WithTextExtractor(e TextExtractor) PipelineOption {
	return func(p *Pipeline) { p.extractor = e }
}

// WithLanguageDetector 替换语言检测器
func WithLanguageDetector(d LanguageDetector) PipelineOption {
	return func(p *Pipeline) { p.detector = d }
}

// WithProfileParser 替换档案解析器
func WithProfileParser(pp ProfileParser) PipelineOption {
	return func(p *Pipeline) { p.parser = pp }
}

// WithDedupGuard 替换去重集合
func WithDedupGuard(g DedupGuard) PipelineOption {
	return func(p *Pipeline) { p.dedupGuard = g }
}

// NewPipeline 创建流水线，默认组件可通过选项替换
func NewPipeline(cfg *config.PipelineConfig, logger zerolog.Logger, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		extractor:  extractor.NewEngine(logger),
		detector:   whatlangDetector{},
		parser:     parser.NewHeuristicParser(logger),
		dedupGuard: NewMemoryDedupGuard(),
		cfg:        cfg,
		logger:     logger.With().Str("component", "pipeline").Logger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// whatlangDetector 默认的统计语言检测实现
type whatlangDetector struct{}

func (whatlangDetector) Detect(text string) string {
	return extractor.DetectLanguage(text)
}

// PipelineResult 流水线的完整输出
type PipelineResult struct {
	Profile         *types.CandidateProfile
	Recommendations []types.Recommendation
	Extracted       *types.ExtractedText
}

// Process 执行完整的提取流水线
// 门禁失败（格式/空文本/过短/重复/语言）返回类型化错误且不产出档案
// 通过门禁后章节级的启发式失败只降级不报错
func (p *Pipeline) Process(ctx context.Context, doc *types.Document) (*PipelineResult, error) {
	// 格式检测与文本提取
	text, err := p.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, NewProcessError(doc.UUID, "text_extraction", err, doc.Filename)
	}

	// 最低长度校验，按字符数而不是字节数
	trimmed := strings.TrimSpace(text)
	length := utf8.RuneCountInString(trimmed)
	if length < constants.MinTextLength {
		return nil, NewShortDocumentError(doc.UUID, length)
	}

	// 内容哈希去重，只查不写
	md5 := utils.CalculateMD5([]byte(trimmed))
	originalUUID, exists, err := p.dedupGuard.Check(ctx, md5)
	if err != nil {
		return nil, NewProcessError(doc.UUID, "dedup_check", err, "")
	}
	if exists {
		return nil, NewDuplicateDocumentError(doc.UUID, md5, originalUUID)
	}

	// 语言检测与门禁
	language := p.detector.Detect(trimmed)
	if p.cfg.StrictLanguageGate && !p.cfg.IsLanguageSupported(language) {
		return nil, NewUnsupportedLanguageError(doc.UUID, language)
	}

	extracted := &types.ExtractedText{
		Text:     trimmed,
		Length:   length,
		MD5:      md5,
		Language: language,
	}

	// 结构化解析、评分与建议生成
	profile := p.parser.Parse(doc.UUID, trimmed)
	profile.Language = language
	recs := parser.GenerateRecommendations(profile)

	p.logger.Info().
		Str("document_uuid", doc.UUID).
		Str("language", language).
		Int("text_length", length).
		Int("aptitude_score", profile.AptitudeScore).
		Int("experience_years", profile.ExperienceYears).
		Strs("degraded_sections", profile.Degraded).
		Msg("文档提取流水线完成")

	return &PipelineResult{
		Profile:         profile,
		Recommendations: recs,
		Extracted:       extracted,
	}, nil
}

// MarkProcessed 在整条流水线及持久化成功后登记内容哈希
// 与Process分离：失败的文档不应阻止同内容的后续重试
func (p *Pipeline) MarkProcessed(ctx context.Context, md5, documentUUID string) error {
	return p.dedupGuard.Record(ctx, md5, documentUUID)
}
