package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/nguyentantai21042004/slidecast/pkg/executor"
)

// edgeEngine drives the edge-tts command line tool: a network backend with
// neural voices, the best quality in the chain.
type edgeEngine struct {
	exec  executor.Executor
	voice string
}

func newEdgeEngine(exec executor.Executor, voice string) *edgeEngine {
	return &edgeEngine{exec: exec, voice: voice}
}

func (e *edgeEngine) Name() string {
	return "edge-tts"
}

func (e *edgeEngine) Available() bool {
	_, err := exec.LookPath("edge-tts")
	return err == nil
}

func (e *edgeEngine) Synthesize(ctx context.Context, text, language, outputPath string) error {
	args := []string{
		"--text", text,
		"--voice", e.voiceFor(language),
		"--write-media", outputPath,
	}
	if _, err := e.exec.Execute(ctx, "edge-tts", args...); err != nil {
		return fmt.Errorf("edge-tts: %w", err)
	}
	return nil
}

func (e *edgeEngine) voiceFor(language string) string {
	lang := strings.ToLower(language)
	if strings.HasPrefix(lang, "zh") && e.voice != "" {
		return e.voice
	}
	switch {
	case strings.HasPrefix(lang, "zh"):
		return "zh-CN-XiaoxiaoNeural"
	case strings.HasPrefix(lang, "en"):
		return "en-US-AriaNeural"
	case strings.HasPrefix(lang, "ja"):
		return "ja-JP-NanamiNeural"
	default:
		return "en-US-AriaNeural"
	}
}
