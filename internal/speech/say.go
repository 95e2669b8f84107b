package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/nguyentantai21042004/slidecast/pkg/executor"
)

// sayEngine is the last resort: the macOS `say` utility. Only reachable
// when everything before it in the chain has failed on a darwin host.
type sayEngine struct {
	exec executor.Executor
}

func newSayEngine(exec executor.Executor) *sayEngine {
	return &sayEngine{exec: exec}
}

func (s *sayEngine) Name() string {
	return "say"
}

func (s *sayEngine) Available() bool {
	if runtime.GOOS != "darwin" {
		return false
	}
	_, err := exec.LookPath("say")
	return err == nil
}

func (s *sayEngine) Synthesize(ctx context.Context, text, language, outputPath string) error {
	aiffPath := outputPath + ".say.aiff"
	defer os.Remove(aiffPath)

	args := []string{"-o", aiffPath}
	if voice := sayVoice(language); voice != "" {
		args = append(args, "-v", voice)
	}
	args = append(args, text)

	if _, err := s.exec.Execute(ctx, "say", args...); err != nil {
		return fmt.Errorf("say: %w", err)
	}

	convert := []string{
		"-y",
		"-i", aiffPath,
		"-c:a", "libmp3lame",
		"-q:a", "4",
		outputPath,
	}
	if _, err := s.exec.Execute(ctx, "ffmpeg", convert...); err != nil {
		return fmt.Errorf("transcode say output: %w", err)
	}

	return nil
}

func sayVoice(language string) string {
	lang := strings.ToLower(language)
	switch {
	case strings.HasPrefix(lang, "zh"):
		return "Tingting"
	case strings.HasPrefix(lang, "ja"):
		return "Kyoko"
	default:
		return ""
	}
}
