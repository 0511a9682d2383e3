package bpmn

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/vine-io/hdbpmn/api"
)

type backgroundMeta struct {
	BackgroundSize *float64 `json:"backgroundSize"`
}

// ReadBackgroundWidth returns the pixel width the diagram was annotated against.
// It is stored as a JSON comment on the second line of the file:
//
//	<!-- {"backgroundSize": 1000} -->
func ReadBackgroundWidth(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, api.Internal("read %s: %v", path, err)
	}
	return ParseBackgroundWidth(filepath.Base(path), data)
}

func ParseBackgroundWidth(name string, data []byte) (float64, error) {
	lines := bytes.SplitN(data, []byte("\n"), 3)
	if len(lines) < 2 {
		return 0, api.InvalidMetadata("%s has no meta line", name)
	}

	line := strings.TrimSpace(string(lines[1]))
	if !strings.HasPrefix(line, "<!--") || !strings.HasSuffix(line, "-->") {
		return 0, api.InvalidMetadata("%s has no meta line, line 1: %s", name, line)
	}
	line = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "<!--"), "-->"))

	meta := backgroundMeta{}
	if err := json.Unmarshal([]byte(line), &meta); err != nil {
		return 0, api.InvalidMetadata("%s: %v", name, err)
	}
	if meta.BackgroundSize == nil {
		return 0, api.InvalidMetadata("%s: backgroundSize is missing", name)
	}
	if *meta.BackgroundSize <= 0 {
		return 0, api.InvalidMetadata("%s: invalid backgroundSize %v", name, *meta.BackgroundSize)
	}

	return *meta.BackgroundSize, nil
}
