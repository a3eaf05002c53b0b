package http

import (
	"embed"
	"html/template"

	"github.com/MKhiriev/ranking-mk2/internal/config"
	"github.com/MKhiriev/ranking-mk2/internal/logger"
	"github.com/MKhiriev/ranking-mk2/internal/presenter"
	"github.com/MKhiriev/ranking-mk2/internal/service"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Handler struct {
	services *service.Services
	cache    *presenter.ListCache
	cfg      config.App

	templates *template.Template
	logger    *logger.Logger
}

func NewHandler(services *service.Services, cache *presenter.ListCache, cfg config.App, logger *logger.Logger) *Handler {
	templates := template.Must(template.New("").Funcs(template.FuncMap{
		"formatFollowers": presenter.FormatFollowers,
		"rankIconClass":   presenter.RankIconClass,
		"rankLabel":       presenter.RankLabel,
		"add":             func(a, b int) int { return a + b },
		"sub":             func(a, b int) int { return a - b },
	}).ParseFS(templateFS, "templates/*.gohtml"))

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		cache:     cache,
		cfg:       cfg,
		templates: templates,
		logger:    logger,
	}
}
