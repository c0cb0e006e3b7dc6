package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/handler/http/requestid"
	"astrobuzz/internal/handler/http/respond"
	authservice "astrobuzz/internal/service/auth"
	userusecase "astrobuzz/internal/usecase/user"

	"github.com/golang-jwt/jwt/v5"
)

type loginRequest struct {
	Username string `json:"username" example:"stargazer42"`
	Password string `json:"password" example:"your_password"`
}

type tokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type registerRequest struct {
	Username string `json:"username" example:"stargazer42"`
	Password string `json:"password" example:"your_password"`
}

type registerResponse struct {
	ID       int64  `json:"id" example:"3"`
	Username string `json:"username" example:"stargazer42"`
}

// tokenTTL is how long issued tokens stay valid.
const tokenTTL = 1 * time.Hour

// TokenHandler creates an HTTP handler that authenticates accounts and
// issues JWT tokens. Credential validation goes through the AuthService.
//
// @Summary      Issue JWT token
// @Description  Authenticates a username/password pair and returns a signed JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "Login credentials"
// @Success      200 {object} tokenResponse "Signed JWT"
// @Failure      400 {string} string "Malformed request"
// @Failure      401 {string} string "Authentication failed"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      500 {string} string "Token generation failed"
// @Router       /auth/token [post]
func TokenHandler(authService *authservice.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := requestid.FromContext(r.Context())
		logger := slog.With(slog.String("request_id", requestID))

		logger.Info("authentication attempt started")

		provider := authService.GetProvider().Name()

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest(provider, "failure")
			RecordAuthDuration(provider, time.Since(start).Seconds())
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		creds := authservice.Credentials{
			Username: req.Username,
			Password: req.Password,
		}

		if err := authService.ValidateCredentials(r.Context(), creds); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest(provider, "failure")
			RecordAuthDuration(provider, time.Since(start).Seconds())
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Resolve the account id the token is issued for
		uid, err := authService.GetProvider().IdentifyUser(r.Context(), req.Username)
		if err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "identification_failed"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest(provider, "failure")
			RecordAuthDuration(provider, time.Since(start).Seconds())
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		secret := []byte(os.Getenv("JWT_SECRET"))

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": req.Username,
			"uid": uid,
			"exp": time.Now().Add(tokenTTL).Unix(),
		})

		signed, err := token.SignedString(secret)
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest(provider, "failure")
			RecordAuthDuration(provider, time.Since(start).Seconds())
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		logger.Info("authentication successful",
			slog.String("username", req.Username),
			slog.Int64("user_id", uid),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))

		RecordAuthRequest(provider, "success")
		RecordAuthDuration(provider, time.Since(start).Seconds())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tokenResponse{Token: signed}); err != nil {
			logger.Error("failed to encode token response",
				slog.String("error", err.Error()))
		}
	}
}

// RegisterHandler creates an HTTP handler for account registration.
// Password policy comes from the provider's credential requirements.
//
// @Summary      Register account
// @Description  Creates a new account with a unique username
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body registerRequest true "Account details"
// @Success      201 {object} registerResponse "Created account"
// @Failure      400 {string} string "Malformed request or weak password"
// @Failure      409 {string} string "Username already taken"
// @Failure      500 {string} string "Registration failed"
// @Router       /auth/register [post]
func RegisterHandler(authService *authservice.AuthService, users *userusecase.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := requestid.FromContext(r.Context())
		logger := slog.With(slog.String("request_id", requestID))

		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		reqs := authService.GetProvider().GetRequirements()
		if len(req.Password) < reqs.MinPasswordLength {
			respond.SafeError(w, http.StatusBadRequest,
				fmt.Errorf("password must be at least %d characters", reqs.MinPasswordLength))
			return
		}

		u, err := users.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			var verr *entity.ValidationError
			switch {
			case errors.Is(err, userusecase.ErrUsernameTaken):
				respond.SafeError(w, http.StatusConflict, err)
			case errors.As(err, &verr):
				respond.SafeError(w, http.StatusBadRequest, err)
			default:
				logger.Error("registration failed", slog.String("error", err.Error()))
				respond.SafeError(w, http.StatusInternalServerError, err)
			}
			return
		}

		logger.Info("account registered",
			slog.Int64("user_id", u.ID),
			slog.String("username", u.Username))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(registerResponse{ID: u.ID, Username: u.Username}); err != nil {
			logger.Error("failed to encode register response",
				slog.String("error", err.Error()))
		}
	}
}
