package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"cv-agent-go/internal/config"
	"cv-agent-go/internal/processor"
	"cv-agent-go/internal/types"
)

// 本地文件提取工具：读取一份文档，跑完整流水线，输出档案JSON
// 不依赖任何外部存储，去重集合为进程内存实现
func main() {
	var (
		filePath   string
		strictGate bool
		pretty     bool
	)
	pflag.StringVarP(&filePath, "file", "f", "", "Path to the document to extract")
	pflag.BoolVar(&strictGate, "strict-language", true, "Reject documents outside the supported languages")
	pflag.BoolVar(&pretty, "pretty", true, "Pretty-print the output JSON")
	pflag.Parse()

	if filePath == "" && pflag.NArg() > 0 {
		filePath = pflag.Arg(0)
	}
	if filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: cvextract -f <document>")
		os.Exit(2)
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取文件失败: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)

	pipelineCfg := &config.PipelineConfig{
		StrictLanguageGate: strictGate,
		SupportedLanguages: []string{"es", "en"},
	}
	pipeline := processor.NewPipeline(pipelineCfg, logger)

	doc := &types.Document{
		UUID:     uuid.NewString(),
		Filename: filepath.Base(filePath),
		Raw:      raw,
	}

	result, err := pipeline.Process(context.Background(), doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "提取失败: %v\n", err)
		os.Exit(1)
	}

	output := struct {
		Profile         *types.CandidateProfile `json:"profile"`
		Recommendations []types.Recommendation  `json:"recommendations"`
	}{
		Profile:         result.Profile,
		Recommendations: result.Recommendations,
	}

	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(output); err != nil {
		fmt.Fprintf(os.Stderr, "序列化输出失败: %v\n", err)
		os.Exit(1)
	}
}
