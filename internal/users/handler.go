package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/middleware"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersService interface {
	Register(ctx context.Context, params RegisterParams) (*User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) (bool, error)
	GetInfo(ctx context.Context, userID int) (*Info, error)
	UpdateInfo(ctx context.Context, userID int, displayName string) (*Info, error)
}

type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateInfoRequest struct {
	DisplayName string `json:"displayName"`
}

type Handler struct {
	service        usersService
	metricsManager *metrics.Manager
}

func NewHandler(service usersService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

// SetupRoutes registers the user routes, login and register are rate limited.
func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginAllowedPerMin int,
) {
	rateLimited := middleware.RateLimit(rateLimiter, "login", loginAllowedPerMin, handler.metricsManager)

	router.Handle("/user/register", rateLimited(http.HandlerFunc(handler.HandleRegister))).Methods("POST", "OPTIONS").Name("user-register")
	router.Handle("/user/login", rateLimited(http.HandlerFunc(handler.HandleLogin))).Methods("POST", "OPTIONS").Name("user-login")
	router.HandleFunc("/user/logout", handler.HandleLogout).Methods("GET", "OPTIONS").Name("user-logout")
	router.HandleFunc("/user/info", handler.HandleGetInfo).Methods("GET", "OPTIONS").Name("user-info")
	router.HandleFunc("/user/info", handler.HandleUpdateInfo).Methods("PUT", "OPTIONS").Name("user-info-update")
	router.HandleFunc("/auth/check", handler.HandleAuthCheck).Methods("GET", "OPTIONS").Name("auth-check")
}

func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("register, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("username", req.Username))

	user, err := handler.service.Register(ctx, RegisterParams{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			log.Errorf("register user [%s]: %s", req.Username, err)
			http.Error(w, "register failed", status)
			return
		}
		http.Error(w, err.Error(), status)
		return
	}

	log.Debugf("new user registered: %s", user.Username)
	pkg.WriteJSON(w, user, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}
	if req.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	result, err := handler.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			handler.metricsManager.CounterLogins.WithLabelValues("denied").Inc()
			http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
			return
		}
		handler.metricsManager.CounterLogins.WithLabelValues("error").Inc()
		log.Errorf("login failed for %s: %s", req.Username, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterLogins.WithLabelValues("ok").Inc()
	log.Tracef("new login success: %s", req.Username)
	pkg.WriteJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	authToken := r.Header.Get(auth.TokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.service.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout failed: %s", err)
		http.Error(w, "no can do", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandleAuthCheck(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleGetInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.info.get")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	info, err := handler.service.GetInfo(ctx, session.UserID)
	if err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			log.Errorf("get user info for %d: %s", session.UserID, err)
		}
		http.Error(w, "failed to get user info", status)
		return
	}

	pkg.WriteJSON(w, info, http.StatusOK)
}

func (handler *Handler) HandleUpdateInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.info.update")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req UpdateInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	info, err := handler.service.UpdateInfo(ctx, session.UserID, req.DisplayName)
	if err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			log.Errorf("update user info for %d: %s", session.UserID, err)
			http.Error(w, "failed to update user info", status)
			return
		}
		http.Error(w, err.Error(), status)
		return
	}

	pkg.WriteJSON(w, info, http.StatusOK)
}
