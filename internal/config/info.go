package config

import (
	"path/filepath"
)

// Info describes where the effective configuration came from
type Info struct {
	// Path of the loaded file, "" when running on defaults
	Path string
	// Explicit is true when the path came from --config or TERMSUGGEST_CONFIG
	Explicit bool
	// Searched lists the locations probed when no explicit path was given
	Searched []string
	Config   *Config
	Keys     []string
}

// GetInfo resolves the configuration the same way commands do and reports its origin
func GetInfo(explicit string) (*Info, error) {
	info := &Info{Explicit: explicit != ""}

	if explicit == "" {
		dir, err := ConfigHome()
		if err == nil {
			for _, name := range SupportedConfigNames {
				info.Searched = append(info.Searched, filepath.Join(dir, name))
			}
		}
	}

	loader := New()
	cfg, path, err := resolveWith(loader, explicit)
	if err != nil {
		return nil, err
	}

	info.Path = path
	info.Config = cfg
	info.Keys = loader.Keys()
	return info, nil
}
