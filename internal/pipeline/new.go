package pipeline

import (
	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
	"github.com/nguyentantai21042004/slidecast/internal/speech"
	"github.com/nguyentantai21042004/slidecast/internal/video"
	"github.com/nguyentantai21042004/slidecast/pkg/executor"
)

type implPipeline struct {
	cfg       *config.Config
	scheduler speech.Scheduler
	composer  video.Composer
	logger    logger.Logger
}

// New wires the full per-deck pipeline: synthesis stack and video composer.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Pipeline, error) {
	scheduler, err := speech.New(cfg, exec, log)
	if err != nil {
		return nil, err
	}
	composer, err := video.New(cfg, exec, log)
	if err != nil {
		return nil, err
	}
	return &implPipeline{
		cfg:       cfg,
		scheduler: scheduler,
		composer:  composer,
		logger:    log,
	}, nil
}
