package rules

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"tidydl/internal/logging"
)

// OverridesFileName is the per-folder category override file read from the
// root of the folder being organized.
const OverridesFileName = "organize_config.json"

type overridesFile struct {
	Categories map[string][]string `json:"categories"`
}

// LoadOverrides reads category overrides from the folder's
// organize_config.json. A missing or malformed file yields nil so a bad
// config never blocks a pass; malformed files are logged as warnings.
func LoadOverrides(root string, logger *slog.Logger) map[string][]string {
	logger = logging.NewComponentLogger(logger, "rules")
	path := filepath.Join(root, OverridesFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("could not read category overrides", logging.String("path", path), logging.Error(err))
		}
		return nil
	}

	var parsed overridesFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		logger.Warn("malformed category overrides ignored", logging.String("path", path), logging.Error(err))
		return nil
	}
	if len(parsed.Categories) == 0 {
		return nil
	}

	logger.Info("loaded category overrides",
		logging.String("path", path),
		logging.Int("categories", len(parsed.Categories)))
	return parsed.Categories
}
