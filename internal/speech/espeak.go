package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/nguyentantai21042004/slidecast/pkg/executor"
)

// espeakEngine is the offline backend: fast, always free, robotic. First in
// the chain because it needs no network and fails quickly when absent.
type espeakEngine struct {
	exec  executor.Executor
	voice string
}

func newEspeakEngine(exec executor.Executor, voice string) *espeakEngine {
	return &espeakEngine{exec: exec, voice: voice}
}

func (e *espeakEngine) Name() string {
	return "espeak"
}

func (e *espeakEngine) Available() bool {
	_, err := exec.LookPath("espeak-ng")
	return err == nil
}

func (e *espeakEngine) Synthesize(ctx context.Context, text, language, outputPath string) error {
	voice := e.voice
	if voice == "" {
		voice = espeakVoice(language)
	}

	wavPath := outputPath + ".espeak.wav"
	defer os.Remove(wavPath)

	args := []string{
		"-v", voice,
		"-w", wavPath,
		text,
	}
	if _, err := e.exec.Execute(ctx, "espeak-ng", args...); err != nil {
		return fmt.Errorf("espeak-ng: %w", err)
	}

	// Cache entries are mp3 across all engines.
	convert := []string{
		"-y",
		"-i", wavPath,
		"-c:a", "libmp3lame",
		"-q:a", "4",
		outputPath,
	}
	if _, err := e.exec.Execute(ctx, "ffmpeg", convert...); err != nil {
		return fmt.Errorf("transcode espeak output: %w", err)
	}

	return nil
}

// espeakVoice maps a pipeline language code to an espeak-ng voice.
func espeakVoice(language string) string {
	lang := strings.ToLower(language)
	if strings.HasPrefix(lang, "zh") {
		return "cmn"
	}
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}
