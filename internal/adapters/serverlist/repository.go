package serverlist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"wadofetch/internal/domain"
)

const (
	configName       = "config"
	configType       = "toml"
	serversPathKey   = "servers.path"
	serversConfigDir = ".wadofetch"
	serversFile      = "servers.toml"
)

// Repository loads named DICOMweb server descriptors from a TOML file. The
// file location defaults to ~/.wadofetch/servers.toml and can be overridden
// through the injected viper configuration.
type Repository struct {
	serversPath string
}

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, serversConfigDir, serversFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, serversConfigDir))
	cfg.SetDefault(serversPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	serversPath := cfg.GetString(serversPathKey)
	if serversPath == "" {
		return nil, errors.New("servers path is empty")
	}
	serversPath, err = filepath.Abs(serversPath)
	if err != nil {
		return nil, fmt.Errorf("resolve servers path: %w", err)
	}

	return &Repository{serversPath: filepath.Clean(serversPath)}, nil
}

// GetByName returns the server descriptor with the given name.
func (r *Repository) GetByName(ctx context.Context, name string) (domain.Server, error) {
	if err := ctx.Err(); err != nil {
		return domain.Server{}, err
	}

	file, err := r.readSchema()
	if err != nil {
		return domain.Server{}, err
	}

	for _, entry := range file.Servers {
		if entry.Name == name {
			return fromSchema(entry), nil
		}
	}

	return domain.Server{}, fmt.Errorf("server %q: %w", name, domain.ErrServerNotFound)
}

// List returns every configured server descriptor.
func (r *Repository) List(ctx context.Context) ([]domain.Server, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	servers := make([]domain.Server, 0, len(file.Servers))
	for _, entry := range file.Servers {
		servers = append(servers, fromSchema(entry))
	}
	return servers, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.serversPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read servers file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode servers file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func fromSchema(entry serverSchema) domain.Server {
	return domain.Server{
		Name:               entry.Name,
		WadoUriRoot:        entry.WadoUriRoot,
		WadoRoot:           entry.WadoRoot,
		QidoRoot:           entry.QidoRoot,
		AuthToken:          entry.AuthToken,
		ImageRendering:     entry.ImageRendering,
		ThumbnailRendering: entry.ThumbnailRendering,
		EnableLazyLoad:     entry.EnableLazyLoad,
	}
}
