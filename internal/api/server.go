package api

import (
	"database/sql"

	"github.com/linguaflow/scorereport/internal/config"
	"github.com/linguaflow/scorereport/internal/identity"
	"github.com/linguaflow/scorereport/internal/services"
)

// Server holds the HTTP dependencies.
type Server struct {
	ReportService  services.ReportService
	AttemptService services.AttemptService
	Resolver       identity.Resolver
	DB             *sql.DB
	Config         config.Config
}

// NewServer creates a new Server
func NewServer(
	reportService services.ReportService,
	attemptService services.AttemptService,
	resolver identity.Resolver,
	db *sql.DB,
	cfg config.Config,
) *Server {
	return &Server{
		ReportService:  reportService,
		AttemptService: attemptService,
		Resolver:       resolver,
		DB:             db,
		Config:         cfg,
	}
}
