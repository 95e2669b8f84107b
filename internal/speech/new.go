package speech

import (
	"fmt"

	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
	"github.com/nguyentantai21042004/slidecast/pkg/executor"
)

// New builds the full synthesis stack from config: content-addressed cache,
// the fixed engine chain, the resolver over both, and the bounded scheduler.
// Chain order is static: offline espeak first, then the neural network
// engine, then the basic network engine, then the platform utility.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Scheduler, error) {
	cache, err := NewCache(cfg.TTS.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("open speech cache: %w", err)
	}

	engines := []Engine{
		newEspeakEngine(exec, cfg.TTS.EspeakVoice),
		newEdgeEngine(exec, cfg.TTS.EdgeVoice),
		newGoogleEngine(exec),
		newSayEngine(exec),
	}

	resolver := NewResolver(cache, engines, log)
	return NewScheduler(resolver, log, cfg.Performance.MaxWorkers), nil
}
