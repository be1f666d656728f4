package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"tidydl/internal/config"
	"tidydl/internal/downloads"
	"tidydl/internal/logging"
	"tidydl/internal/organizer"
)

type commandContext struct {
	configFlag *string
	pathFlag   *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag, pathFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, pathFlag: pathFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	cfg, _, _, err := c.loadConfig()
	return cfg, err
}

// loadConfig resolves and parses the configuration once, honoring --config,
// and also reports where the file was looked up and whether it existed.
func (c *commandContext) loadConfig() (*config.Config, string, bool, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolvedPath, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolvedPath
		c.configExists = exists
	})
	return c.config, c.configPath, c.configExists, c.configErr
}

// targetFolder resolves the folder to operate on: --path flag, then config
// override, then the platform Downloads folder.
func (c *commandContext) targetFolder() (string, error) {
	if c.pathFlag != nil {
		if flag := strings.TrimSpace(*c.pathFlag); flag != "" {
			expanded, err := config.ExpandPath(flag)
			if err != nil {
				return "", fmt.Errorf("resolve target path: %w", err)
			}
			return expanded, nil
		}
	}

	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	if cfg.Organize.TargetDir != "" {
		return cfg.Organize.TargetDir, nil
	}
	return downloads.Folder()
}

// newLogger builds the pass logger, optionally mirroring lines into
// organize.log inside the target folder.
func (c *commandContext) newLogger(folder string) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	outputs := []string{"stderr"}
	if cfg.Logging.FileLog {
		outputs = append(outputs, filepath.Join(folder, organizer.LogFileName))
	}
	return logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: outputs,
	})
}
