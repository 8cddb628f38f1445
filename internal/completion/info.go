package completion

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"time"
)

// OutputCacheInfo summarises the captured-output cache for status reports
type OutputCacheInfo struct {
	Path     string
	Size     int64
	Commands []string // argument vectors joined with spaces, sorted
	Newest   time.Time
}

// GetOutputCacheInfo reads the cache file at path. It returns nil, nil when there is no cache yet.
func GetOutputCacheInfo(path string) (*OutputCacheInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	result := &OutputCacheInfo{
		Path: path,
		Size: info.Size(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return result, nil // partial info
	}

	var entries map[string]OutputEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return result, nil // partial info
	}

	for _, entry := range entries {
		result.Commands = append(result.Commands, strings.Join(entry.Argv, " "))
		if entry.Timestamp.After(result.Newest) {
			result.Newest = entry.Timestamp
		}
	}
	sort.Strings(result.Commands)

	return result, nil
}
