package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dfbb/qrmatrix/internal/charset"
	"github.com/dfbb/qrmatrix/internal/config"
	"github.com/dfbb/qrmatrix/internal/qrcode"
)

var flagConfig string

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	home, _ := os.UserHomeDir()
	return home + "/.qrmatrix/config.yaml"
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath())
	if err != nil {
		return config.Defaults()
	}
	return cfg
}

// setupLogging configures the default slog handler, writing to stderr
// rather than a daemon log file since this CLI is interactive, not a
// long-running process.
func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func ecLevelName(level qrcode.ECLevel) string {
	switch level {
	case qrcode.ECLow:
		return "low"
	case qrcode.ECMedium:
		return "medium"
	case qrcode.ECQuartile:
		return "quartile"
	case qrcode.ECHigh:
		return "high"
	}
	return "unknown"
}

func parseECLevel(s string) (qrcode.ECLevel, error) {
	switch strings.ToLower(s) {
	case "low", "l":
		return qrcode.ECLow, nil
	case "medium", "m":
		return qrcode.ECMedium, nil
	case "quartile", "q":
		return qrcode.ECQuartile, nil
	case "high", "h":
		return qrcode.ECHigh, nil
	}
	return 0, fmt.Errorf("unknown error-correction level %q", s)
}

// segmentsForText runs the segmentation heuristic over text's code points,
// using internal/charset's transcoder for Kanji-run detection, then
// re-stamps every resulting segment with eci (a no-op when eci is the
// sentinel defaultECI value the heuristic already used).
func segmentsForText(text string, level qrcode.ECLevel, form qrcode.Form, eci uint32) ([]qrcode.Segment, error) {
	codepoints := charset.UTF8ToCodepoints([]byte(text))
	segments, err := qrcode.SegmentFromCodepoints(codepoints, level, form, charset.Transcoder{})
	if err != nil {
		return nil, err
	}
	if eci == qrcode.DefaultECI {
		return segments, nil
	}
	for i, seg := range segments {
		withECI, err := qrcode.NewSegment(seg.Mode, seg.Payload, eci)
		if err != nil {
			return nil, err
		}
		segments[i] = withECI
	}
	return segments, nil
}
