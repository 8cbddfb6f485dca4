package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/exercises"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/users"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=admin_mocks_test.go -package=admin_test

type namesMerger interface {
	MergeNames(ctx context.Context, toDelete, toExpand string) (int64, error)
}

type namesCache interface {
	Invalidate()
}

type passwordResetter interface {
	ResetPassword(ctx context.Context, username, newPassword string) error
}

type MergeNamesRequest struct {
	ToDelete string `json:"to_delete"`
	ToExpand string `json:"to_expand"`
}

type MergeNamesResponse struct {
	Updated int64 `json:"updated"`
}

type ResetPasswordRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handler serves superuser-only maintenance endpoints.
// The auth middleware is the one rejecting non-superusers.
type Handler struct {
	merger         namesMerger
	names          namesCache
	users          passwordResetter
	metricsManager *metrics.Manager
}

func NewHandler(
	merger namesMerger,
	names namesCache,
	users passwordResetter,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		merger:         merger,
		names:          names,
		users:          users,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/admin/merge-names", handler.HandleMergeNames).Methods("POST", "OPTIONS").Name("admin-merge-names")
	router.HandleFunc("/admin/reset-password", handler.HandleResetPassword).Methods("POST", "OPTIONS").Name("admin-reset-password")
}

func (handler *Handler) HandleMergeNames(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.mergeNames")
	defer span.End()

	var req MergeNamesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("merge names, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.String("merge.to_delete", req.ToDelete),
		attribute.String("merge.to_expand", req.ToExpand),
	)

	updated, err := handler.merger.MergeNames(ctx, req.ToDelete, req.ToExpand)
	if err != nil {
		switch {
		case errors.Is(err, exercises.ErrNameNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, exercises.ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("merge names [%s] -> [%s]: %s", req.ToDelete, req.ToExpand, err)
			http.Error(w, "merge names failed", http.StatusInternalServerError)
		}
		return
	}

	handler.names.Invalidate()
	handler.metricsManager.CounterNameMerges.Inc()

	by := "unknown"
	if session, ok := auth.SessionFromContext(ctx); ok {
		by = session.Username
	}
	log.Infof("exercise name [%s] merged into [%s] by %s, %d sets updated", req.ToDelete, req.ToExpand, by, updated)

	pkg.WriteJSON(w, MergeNamesResponse{Updated: updated}, http.StatusOK)
}

func (handler *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.resetPassword")
	defer span.End()

	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "username and password required", http.StatusBadRequest)
		return
	}

	if err := handler.users.ResetPassword(ctx, req.Username, req.Password); err != nil {
		status := users.StatusForError(err)
		if status == http.StatusInternalServerError {
			log.Errorf("reset password for %s: %s", req.Username, err)
			http.Error(w, "reset password failed", status)
			return
		}
		http.Error(w, err.Error(), status)
		return
	}

	log.Infof("password reset for user %s", req.Username)
	pkg.WriteTextResponseOK(w, "password-reset")
}
