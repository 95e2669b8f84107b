package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/slidecast/pkg/executor"
)

const (
	// googleTextCeiling is the hard per-call text limit of the endpoint;
	// googleChunkLimit keeps a safety margin under it.
	googleTextCeiling = 200
	googleChunkLimit  = 180

	// chunkGapSeconds of silence between chunk boundaries so the joins
	// aren't audible as hard cuts.
	chunkGapSeconds = "0.2"
)

// googleEngine calls the public translate_tts endpoint: a basic network
// backend, no API key, but with a per-call text-length ceiling. Oversized
// text is split at sentence boundaries, synthesized per chunk, and the
// chunks concatenated with a short silence in between. The splitting is
// invisible to the resolver.
type googleEngine struct {
	exec    executor.Executor
	client  *http.Client
	baseURL string
}

func newGoogleEngine(exec executor.Executor) *googleEngine {
	return &googleEngine{
		exec:    exec,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://translate.google.com/translate_tts",
	}
}

func (g *googleEngine) Name() string {
	return "google"
}

// Available is always true; network reachability only shows up at call time.
func (g *googleEngine) Available() bool {
	return true
}

func (g *googleEngine) Synthesize(ctx context.Context, text, language, outputPath string) error {
	chunks := splitText(text, googleChunkLimit)
	if len(chunks) == 1 {
		return g.fetch(ctx, chunks[0], language, outputPath)
	}

	dir, err := os.MkdirTemp(filepath.Dir(outputPath), "gtts-*")
	if err != nil {
		return fmt.Errorf("create chunk dir: %w", err)
	}
	defer os.RemoveAll(dir)

	for i, chunk := range chunks {
		chunkPath := filepath.Join(dir, fmt.Sprintf("chunk_%03d.mp3", i))
		if err := g.fetch(ctx, chunk, language, chunkPath); err != nil {
			return fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
	}

	silencePath := filepath.Join(dir, "silence.mp3")
	silenceArgs := []string{
		"-y",
		"-f", "lavfi",
		"-i", "anullsrc=r=24000:cl=mono",
		"-t", chunkGapSeconds,
		"-c:a", "libmp3lame",
		"-q:a", "9",
		silencePath,
	}
	if _, err := g.exec.Execute(ctx, "ffmpeg", silenceArgs...); err != nil {
		return fmt.Errorf("generate chunk silence: %w", err)
	}

	var list strings.Builder
	for i := range chunks {
		if i > 0 {
			list.WriteString("file 'silence.mp3'\n")
		}
		fmt.Fprintf(&list, "file 'chunk_%03d.mp3'\n", i)
	}
	listPath := filepath.Join(dir, "list.txt")
	if err := os.WriteFile(listPath, []byte(list.String()), 0644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}

	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	// Relative entries in list.txt, so run ffmpeg inside the chunk dir.
	concatArgs := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", "list.txt",
		"-c:a", "libmp3lame",
		"-q:a", "4",
		absOutput,
	}
	if _, err := g.exec.ExecuteInDir(ctx, dir, "ffmpeg", concatArgs...); err != nil {
		return fmt.Errorf("concat chunks: %w", err)
	}

	return nil
}

func (g *googleEngine) fetch(ctx context.Context, text, language, outputPath string) error {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", language)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("translate_tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("translate_tts status %d", resp.StatusCode)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return fmt.Errorf("write audio: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("translate_tts returned empty body")
	}

	return nil
}

var sentenceEnders = map[rune]bool{
	'。': true, '！': true, '？': true,
	'.': true, '!': true, '?': true,
}

var clauseEnders = map[rune]bool{
	'，': true, '、': true, '；': true,
	',': true, ';': true,
}

// splitText splits text into chunks of at most limit runes, breaking at
// sentence-terminal punctuation. A sentence longer than the limit falls back
// to clause punctuation, and as a last resort to a hard rune cut.
func splitText(text string, limit int) []string {
	if len([]rune(text)) <= limit {
		return []string{text}
	}

	var chunks []string
	var current []rune

	flush := func() {
		s := strings.TrimSpace(string(current))
		if s != "" {
			chunks = append(chunks, s)
		}
		current = current[:0]
	}

	for _, sentence := range splitAt(text, sentenceEnders) {
		runes := []rune(sentence)
		if len(runes) > limit {
			// Oversized sentence: place what we have, then split it
			// further on clause punctuation.
			flush()
			for _, piece := range splitOversized(sentence, limit) {
				chunks = append(chunks, piece)
			}
			continue
		}
		if len(current)+len(runes) > limit {
			flush()
		}
		current = append(current, runes...)
	}
	flush()

	return chunks
}

// splitAt cuts text after every rune in the enders set, keeping the
// terminator with the preceding piece.
func splitAt(text string, enders map[rune]bool) []string {
	var pieces []string
	var current []rune
	for _, r := range text {
		current = append(current, r)
		if enders[r] {
			pieces = append(pieces, string(current))
			current = current[:0]
		}
	}
	if len(current) > 0 {
		pieces = append(pieces, string(current))
	}
	return pieces
}

func splitOversized(sentence string, limit int) []string {
	var out []string
	var current []rune
	for _, clause := range splitAt(sentence, clauseEnders) {
		runes := []rune(clause)
		if len(runes) > limit {
			if len(current) > 0 {
				out = append(out, strings.TrimSpace(string(current)))
				current = current[:0]
			}
			out = append(out, hardSplit(clause, limit)...)
			continue
		}
		if len(current)+len(runes) > limit {
			out = append(out, strings.TrimSpace(string(current)))
			current = current[:0]
		}
		current = append(current, runes...)
	}
	if len(current) > 0 {
		out = append(out, strings.TrimSpace(string(current)))
	}
	return out
}

func hardSplit(s string, limit int) []string {
	runes := []rune(s)
	var out []string
	for len(runes) > limit {
		out = append(out, strings.TrimSpace(string(runes[:limit])))
		runes = runes[limit:]
	}
	if len(runes) > 0 {
		out = append(out, strings.TrimSpace(string(runes)))
	}
	return out
}
