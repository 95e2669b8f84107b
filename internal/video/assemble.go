package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// assemble concatenates ordered segments losslessly (stream copy, no
// re-encode) into outputPath and stamps container metadata.
func (c *implComposer) assemble(ctx context.Context, segments []segment, meta Metadata, dir, outputPath string) error {
	var list strings.Builder
	for _, seg := range segments {
		fmt.Fprintf(&list, "file '%s'\n", filepath.Base(seg.path))
	}
	listPath := filepath.Join(dir, "segments.txt")
	if err := os.WriteFile(listPath, []byte(list.String()), 0644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}

	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	createdAt := meta.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	// Concat list entries are relative, so ffmpeg runs inside the segment
	// dir. Metadata rides on the same stream-copy pass.
	args := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", "segments.txt",
		"-c", "copy",
		"-metadata", "title=" + meta.Title,
		"-metadata", "artist=" + meta.Author,
		"-metadata", "creation_time=" + createdAt.UTC().Format(time.RFC3339),
		absOutput,
	}

	if _, err := c.exec.ExecuteInDir(ctx, dir, "ffmpeg", args...); err != nil {
		return fmt.Errorf("concat segments: %w", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil || info.Size() == 0 {
		return fmt.Errorf("%w: %s", ErrAssemblyFailed, outputPath)
	}

	return nil
}
