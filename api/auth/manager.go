package auth

import (
	"printdoot_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger *gecho.Logger
	cfg    *structs.Config
}

func NewAuthRoutesManager(logger *gecho.Logger, cfg *structs.Config) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger: logger,
		cfg:    cfg,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/admin/login", arm.AdminLogin)
	})
}
