package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	TTS         TTSConfig         `yaml:"tts"`
	Video       VideoConfig       `yaml:"video"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Script      ScriptConfig      `yaml:"script"`
}

type TTSConfig struct {
	Language    string `yaml:"language"`
	CacheDir    string `yaml:"cache_dir"`
	EdgeVoice   string `yaml:"edge_voice"`
	EspeakVoice string `yaml:"espeak_voice"`
}

type VideoConfig struct {
	Resolution   string `yaml:"resolution"`
	FrameRate    int    `yaml:"frame_rate"`
	Codec        string `yaml:"codec"`
	Preset       string `yaml:"preset"`
	Bitrate      string `yaml:"bitrate"`
	AudioCodec   string `yaml:"audio_codec"`
	AudioBitrate string `yaml:"audio_bitrate"`
	Author       string `yaml:"author"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxWorkers int `yaml:"max_workers"`
}

type ScriptConfig struct {
	CourseName string `yaml:"course_name"`
}

func (c *Config) Validate() error {
	if c.TTS.Language == "" {
		return fmt.Errorf("tts.language is required")
	}
	if c.Video.Resolution == "" {
		return fmt.Errorf("video.resolution is required")
	}
	if _, _, err := c.Video.Size(); err != nil {
		return err
	}
	if c.Performance.MaxWorkers < 0 {
		return fmt.Errorf("performance.max_workers must not be negative")
	}

	if c.TTS.CacheDir == "" {
		c.TTS.CacheDir = "data/cache/tts"
	}
	if c.TTS.EdgeVoice == "" {
		c.TTS.EdgeVoice = "zh-CN-XiaoxiaoNeural"
	}
	if c.Video.FrameRate == 0 {
		c.Video.FrameRate = 30
	}
	if c.Video.Codec == "" {
		c.Video.Codec = "libx264"
	}
	if c.Video.Preset == "" {
		c.Video.Preset = "medium"
	}
	if c.Video.Bitrate == "" {
		c.Video.Bitrate = "5M"
	}
	if c.Video.AudioCodec == "" {
		c.Video.AudioCodec = "aac"
	}
	if c.Video.AudioBitrate == "" {
		c.Video.AudioBitrate = "128k"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxWorkers == 0 {
		c.Performance.MaxWorkers = 4
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// Size parses video.resolution ("1920x1080") into width and height.
func (v *VideoConfig) Size() (int, int, error) {
	parts := strings.SplitN(strings.ToLower(v.Resolution), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("video.resolution must look like 1920x1080, got %q", v.Resolution)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("video.resolution width invalid: %q", v.Resolution)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("video.resolution height invalid: %q", v.Resolution)
	}
	return w, h, nil
}

// applyEnv overrides selected keys from environment variables.
// Environment wins over the file, matching deployment convention.
func (c *Config) applyEnv() {
	if v := os.Getenv("TTS_LANGUAGE"); v != "" {
		c.TTS.Language = v
	}
	if v := os.Getenv("VIDEO_RESOLUTION"); v != "" {
		c.Video.Resolution = v
	}
	if v := os.Getenv("VIDEO_FRAME_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Video.FrameRate = n
		}
	}
	if v := os.Getenv("VIDEO_BITRATE"); v != "" {
		c.Video.Bitrate = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PERFORMANCE_MAX_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Performance.MaxWorkers = n
		}
	}
}
