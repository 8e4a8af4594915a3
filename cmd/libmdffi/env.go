package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yhilem-ai/mdffi"
	"github.com/yhilem-ai/mdffi/internal/buffer"
	"github.com/yhilem-ai/mdffi/internal/strbox"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// envLog selects the log level: debug, info, warn or error. Unset or
	// "off" disables logging.
	envLog = "MDFFI_LOG"
	// envDebugAlloc keeps that many released strings poisoned in quarantine.
	envDebugAlloc = "MDFFI_DEBUG_ALLOC"
)

func init() {
	if err := configure(os.LookupEnv); err != nil {
		fmt.Fprintf(os.Stderr, "mdffi: %v\n", err)
	}
}

// configure applies the process environment to the library's logging and
// allocator settings.
func configure(lookup func(string) (string, bool)) error {
	level, _ := lookup(envLog)
	l, err := newLogger(level)
	if err != nil {
		return fmt.Errorf("%s: %w", envLog, err)
	}
	mdffi.SetLogger(l)
	buffer.SetLogger(l.Named("buffer"))

	if v, ok := lookup(envDebugAlloc); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", envDebugAlloc, err)
		}
		strbox.SetQuarantine(n)
		l.Info("string quarantine enabled", zap.Int("capacity", n))
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" || level == "off" {
		return zap.NewNop(), nil
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return zap.NewNop(), err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), err
	}
	return l.Named("mdffi"), nil
}
