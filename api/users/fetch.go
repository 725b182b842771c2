package users

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// GetUser handles GET /users/{clerkId}
func (urm *UserRoutesManager) GetUser(w http.ResponseWriter, r *http.Request) {
	clerkID := chi.URLParam(r, "clerkId")

	user, err := urm.userService.GetUserByClerkID(r.Context(), clerkID)
	if err != nil {
		urm.logger.Error("Failed to fetch user",
			gecho.Field("error", err),
			gecho.Field("clerk_id", clerkID))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.users.failedToFetch"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}
	if user == nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.users.notFound"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"user": user,
		}),
		gecho.Send(),
	)
}

// GetUserDetails handles GET /users/{clerkId}/details
func (urm *UserRoutesManager) GetUserDetails(w http.ResponseWriter, r *http.Request) {
	clerkID := chi.URLParam(r, "clerkId")

	details, err := urm.userService.GetDetailsByClerkID(r.Context(), clerkID)
	if err != nil {
		urm.logger.Error("Failed to fetch user details",
			gecho.Field("error", err),
			gecho.Field("clerk_id", clerkID))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.users.failedToFetchDetails"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}
	if details == nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.users.detailsNotFound"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"details": details,
		}),
		gecho.Send(),
	)
}
