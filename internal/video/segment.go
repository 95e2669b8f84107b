package video

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
)

// buildSegment renders one slide into a fixed-duration clip: the image is
// held for the slide's seconds, scaled and padded to the target resolution
// with the aspect ratio preserved (centered), and the narration audio muxed
// on. -shortest bounds the clip by the shorter of image and audio duration,
// so a segment never outruns its own audio.
func (c *implComposer) buildSegment(ctx context.Context, s Slide, seconds float64, dir string) (segment, error) {
	segPath := filepath.Join(dir, fmt.Sprintf("segment_%03d.mp4", s.Page))

	filter := fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:color=black",
		c.width, c.height, c.width, c.height,
	)

	args := []string{
		"-y",
		"-loop", "1",
		"-i", s.ImagePath,
		"-i", s.AudioPath,
		"-t", strconv.FormatFloat(seconds, 'f', 3, 64),
		"-vf", filter,
		"-r", strconv.Itoa(c.cfg.Video.FrameRate),
		"-c:v", c.cfg.Video.Codec,
		"-preset", c.cfg.Video.Preset,
		"-b:v", c.cfg.Video.Bitrate,
		"-tune", "stillimage",
		"-c:a", c.cfg.Video.AudioCodec,
		"-b:a", c.cfg.Video.AudioBitrate,
		"-pix_fmt", "yuv420p",
		"-shortest",
		segPath,
	}

	if _, err := c.exec.Execute(ctx, "ffmpeg", args...); err != nil {
		return segment{}, fmt.Errorf("%w: page %d: %v", ErrSegmentEncode, s.Page, err)
	}

	return segment{page: s.Page, path: segPath, seconds: seconds}, nil
}
