package auth

import (
	"net/http"
	"printdoot_server/lib"
	"printdoot_server/structs"

	"github.com/MonkyMars/gecho"
)

// AdminLogin handles POST /auth/admin/login: exchanges the admin password
// for a signed bearer token.
func (arm *AuthRoutesManager) AdminLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AdminLoginRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.auth.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	if arm.cfg.Auth.AdminPasswordHash == "" || !lib.VerifyPassword(body.Password, arm.cfg.Auth.AdminPasswordHash) {
		arm.logger.Warn("Admin login attempt with invalid credentials")
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidCredentials"),
			gecho.Send(),
		)
		return
	}

	token, err := lib.GenerateAdminToken()
	if err != nil {
		arm.logger.Error("Failed to sign admin token", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.auth.tokenGenerationFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.auth.loggedIn"),
		gecho.WithData(structs.AdminLoginResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresIn: int64(arm.cfg.Auth.AdminTokenExpiry.Seconds()),
		}),
		gecho.Send(),
	)
}
