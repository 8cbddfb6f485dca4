package bodystats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=bodystats_mocks_test.go -package=bodystats_test

type bodyStatsRepo interface {
	Add(ctx context.Context, userID int, measurement Measurement, createdAt time.Time) (*Entry, error)
	List(ctx context.Context, userID int, limit *int) ([]Entry, error)
	Latest(ctx context.Context, userID int) (*Latest, error)
}

type AddRequest struct {
	Measurement
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type Handler struct {
	repo bodyStatsRepo
}

func NewHandler(repo bodyStatsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/user/info-ts", handler.HandleList).Methods("GET", "OPTIONS").Name("body-stats-list")
	router.HandleFunc("/user/info-ts/latest", handler.HandleLatest).Methods("GET", "OPTIONS").Name("body-stats-latest")
	router.HandleFunc("/user/info-ts", handler.HandleAdd).Methods("POST", "OPTIONS").Name("body-stats-add")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodystats.add")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	createdAt := time.Now()
	if req.CreatedAt != nil && !req.CreatedAt.IsZero() {
		createdAt = *req.CreatedAt
	}

	entry, err := handler.repo.Add(ctx, session.UserID, req.Measurement, createdAt)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add body stats for user %d: %s", session.UserID, err)
		http.Error(w, "failed to add measurement", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, entry, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodystats.list")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var limit *int
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 0 {
			http.Error(w, "parse form error, parameter <limit>", http.StatusBadRequest)
			return
		}
		limit = &l
	}

	entries, err := handler.repo.List(ctx, session.UserID, limit)
	if err != nil {
		log.Errorf("list body stats for user %d: %s", session.UserID, err)
		http.Error(w, "failed to list measurements", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	pkg.WriteJSON(w, entries, http.StatusOK)
}

func (handler *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodystats.latest")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	latest, err := handler.repo.Latest(ctx, session.UserID)
	if err != nil {
		log.Errorf("latest body stats for user %d: %s", session.UserID, err)
		http.Error(w, "failed to get latest measurements", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, latest, http.StatusOK)
}
