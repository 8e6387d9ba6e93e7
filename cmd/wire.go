package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"

	studyrender "wadofetch/internal/adapters/render/study"
	"wadofetch/internal/adapters/serverlist"
	"wadofetch/internal/application"
	"wadofetch/internal/domain"
	"wadofetch/internal/ports"
)

type app struct {
	servers       *serverlist.Repository
	paletteCache  *application.PaletteCache
	httpClient    *http.Client
	studyRenderer func(*domain.Study, studyrender.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	servers, err := serverlist.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire server repository: %w", err)
	}

	return &app{
		servers:       servers,
		paletteCache:  application.NewPaletteCache(ports.SystemClock{}),
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		studyRenderer: studyrender.Render,
	}, nil
}
