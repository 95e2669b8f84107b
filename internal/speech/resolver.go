package speech

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/slidecast/internal/logger"
)

type implResolver struct {
	cache   *Cache
	engines []Engine
	logger  logger.Logger
}

// NewResolver builds a Resolver over an injected cache and a fixed engine
// chain. Engines are tried in slice order, each at most once per request.
func NewResolver(cache *Cache, engines []Engine, log logger.Logger) Resolver {
	return &implResolver{
		cache:   cache,
		engines: engines,
		logger:  log,
	}
}

// Resolve synthesizes text to outputPath: normalize, check cache, walk the
// engine chain, store the first success. Empty text after marker stripping
// returns ("", nil) without touching the cache or any engine.
func (r *implResolver) Resolve(ctx context.Context, text, language, outputPath string) (string, error) {
	clean := Normalize(text)
	if clean == "" {
		return "", nil
	}

	key := r.cache.Key(clean, language)
	if cached, ok := r.cache.Lookup(key); ok {
		r.logger.Debug(ctx, "TTS cache hit: %s", key[:12])
		if err := copyFile(cached, outputPath); err != nil {
			return "", fmt.Errorf("copy cached artifact: %w", err)
		}
		return outputPath, nil
	}

	for _, eng := range r.engines {
		if !eng.Available() {
			// Missing binary or wrong platform: skip, not an error.
			r.logger.Debug(ctx, "Engine %s unavailable, skipping", eng.Name())
			continue
		}

		if err := eng.Synthesize(ctx, clean, language, outputPath); err != nil {
			r.logger.Warn(ctx, "Engine %s failed: %v", eng.Name(), err)
			continue
		}

		info, err := os.Stat(outputPath)
		if err != nil || info.Size() == 0 {
			r.logger.Warn(ctx, "Engine %s produced no audio", eng.Name())
			continue
		}

		r.logger.Info(ctx, "Synthesized %d chars via %s", len([]rune(clean)), eng.Name())
		if err := r.cache.Store(key, outputPath); err != nil {
			// Cache population is an optimization; the artifact exists.
			r.logger.Warn(ctx, "Failed to cache artifact: %v", err)
		}
		return outputPath, nil
	}

	return "", fmt.Errorf("%w (language %s, %d chars)", ErrSynthesisFailed, language, len([]rune(clean)))
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
