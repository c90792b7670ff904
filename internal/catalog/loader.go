package catalog

import (
	"encoding/json"
	"os"

	"github.com/agendapro/agendapro-backend/internal/pkg/logger"
)

// Load reads the catalog document from path. Any failure (missing
// file, unreadable file, malformed JSON) degrades to an empty catalog
// with default settings and a warning; it never returns an error.
func Load(path string, log *logger.Logger) Document {
	fallback := Document{
		Services: []Entry{},
		Settings: DefaultSettings(),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn("catalog document unavailable, starting with empty catalog",
			"path", path, "error", err)
		return fallback
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Warn("catalog document unparsable, starting with empty catalog",
			"path", path, "error", err)
		return fallback
	}

	if doc.Services == nil {
		doc.Services = []Entry{}
	}

	return doc
}
