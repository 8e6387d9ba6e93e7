package serverlist

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Servers []serverSchema `toml:"servers"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported servers schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type serverSchema struct {
	Name               string `toml:"name"`
	WadoUriRoot        string `toml:"wado_uri_root"`
	WadoRoot           string `toml:"wado_root"`
	QidoRoot           string `toml:"qido_root"`
	AuthToken          string `toml:"auth_token,omitempty"`
	ImageRendering     string `toml:"image_rendering,omitempty"`
	ThumbnailRendering string `toml:"thumbnail_rendering,omitempty"`
	EnableLazyLoad     bool   `toml:"enable_lazy_load,omitempty"`
}
