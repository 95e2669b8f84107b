package batch

import (
	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
	"github.com/nguyentantai21042004/slidecast/internal/pipeline"
)

type implBatch struct {
	cfg    *config.Config
	pipe   pipeline.Pipeline
	logger logger.Logger
	watch  bool
}

// New creates a Batch over an existing per-deck pipeline.
func New(cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger, watch bool) Batch {
	return &implBatch{
		cfg:    cfg,
		pipe:   pipe,
		logger: log,
		watch:  watch,
	}
}
