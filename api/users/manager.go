package users

import (
	"printdoot_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type UserRoutesManager struct {
	logger      *gecho.Logger
	userService *services.UserService
}

func NewUserRoutesManager(logger *gecho.Logger, userService *services.UserService) *UserRoutesManager {
	return &UserRoutesManager{
		logger:      logger,
		userService: userService,
	}
}

func (urm *UserRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/{clerkId}", urm.GetUser)
		r.Get("/{clerkId}/details", urm.GetUserDetails)
	})
}
