package video

import (
	"fmt"

	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
	"github.com/nguyentantai21042004/slidecast/pkg/executor"
)

type implComposer struct {
	cfg    *config.Config
	exec   executor.Executor
	logger logger.Logger
	width  int
	height int
}

// New creates a Composer for the configured resolution and codecs.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Composer, error) {
	w, h, err := cfg.Video.Size()
	if err != nil {
		return nil, fmt.Errorf("video resolution: %w", err)
	}
	return &implComposer{
		cfg:    cfg,
		exec:   exec,
		logger: log,
		width:  w,
		height: h,
	}, nil
}
