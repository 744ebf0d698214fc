// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logMaxSize  = 8 // megabytes
	logMaxFiles = 5
	logMaxAge   = 7 // days
)

type logWrapper struct {
	logger       logging.Logger
	displayLevel zap.AtomicLevel
	logLevel     zap.AtomicLevel
}

// logFactory writes colored logs to stderr and, when a directory is
// configured, rotated JSON logs to disk.
type logFactory struct {
	config logging.Config
	lock   sync.RWMutex

	loggers map[string]logWrapper
}

func newLogFactory(level string, dir string) (*logFactory, error) {
	lvl, err := logging.ToLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return &logFactory{
		config: logging.Config{
			RotatingWriterConfig: logging.RotatingWriterConfig{
				MaxSize:   logMaxSize,
				MaxFiles:  logMaxFiles,
				MaxAge:    logMaxAge,
				Directory: dir,
			},
			LogLevel:     lvl,
			DisplayLevel: lvl,
			LogFormat:    logging.JSON,
		},
		loggers: make(map[string]logWrapper),
	}, nil
}

// Assumes [f.lock] is held
func (f *logFactory) makeLogger(config logging.Config) (logging.Logger, error) {
	if _, ok := f.loggers[config.LoggerName]; ok {
		return nil, fmt.Errorf("logger with name %q already exists", config.LoggerName)
	}

	var consoleWriter io.WriteCloser = os.Stderr
	if config.DisableWriterDisplaying {
		consoleWriter = newDiscardWriteCloser()
	}
	consoleCore := logging.NewWrappedCore(config.DisplayLevel, consoleWriter, logging.Colors.ConsoleEncoder())
	consoleCore.WriterDisabled = config.DisableWriterDisplaying
	cores := []logging.WrappedCore{consoleCore}

	wrapper := logWrapper{displayLevel: consoleCore.AtomicLevel}
	if config.Directory != "" {
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, config.LoggerName+".log"),
			MaxSize:    config.MaxSize,
			MaxAge:     config.MaxAge,
			MaxBackups: config.MaxFiles,
			Compress:   config.Compress,
		}
		fileCore := logging.NewWrappedCore(config.LogLevel, rw, config.LogFormat.FileEncoder())
		cores = append(cores, fileCore)
		wrapper.logLevel = fileCore.AtomicLevel
	}

	prefix := config.LogFormat.WrapPrefix(config.MsgPrefix)
	wrapper.logger = logging.NewLogger(prefix, cores...)
	f.loggers[config.LoggerName] = wrapper
	return wrapper.logger, nil
}

func (f *logFactory) Make(name string) (logging.Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	config := f.config
	config.LoggerName = name
	return f.makeLogger(config)
}

func (f *logFactory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, lw := range f.loggers {
		lw.logger.Stop()
	}
	f.loggers = nil
}

type discardWriteCloser struct {
	io.Writer
}

func newDiscardWriteCloser() *discardWriteCloser {
	return &discardWriteCloser{io.Discard}
}

func (*discardWriteCloser) Close() error {
	return nil
}
