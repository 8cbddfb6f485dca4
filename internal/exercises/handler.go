package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	AddName(ctx context.Context, name string, kind Kind) (*ExerciseName, error)
	AddSet(ctx context.Context, ns NewSet) (Set, error)
	DeleteSet(ctx context.Context, userID, id int) error
	History(ctx context.Context, userID int, limit *int) ([]Set, error)
	PersonalRecords(ctx context.Context, userID int) (*PersonalRecords, error)
	WeightedGraph(ctx context.Context, userID int) ([]ExerciseGraph, error)
}

type namesProvider interface {
	ListNames(ctx context.Context) ([]ExerciseName, error)
	Invalidate()
}

type AddNameRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type AddSetRequest struct {
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Reps      int        `json:"reps"`
	Weight    *float64   `json:"weight,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type DeleteSetResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo           exercisesRepo
	names          namesProvider
	metricsManager *metrics.Manager
}

func NewHandler(repo exercisesRepo, names namesProvider, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		names:          names,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/exercise/name", handler.HandleListNames).Methods("GET", "OPTIONS").Name("list-exercise-names")
	router.HandleFunc("/exercise/name", handler.HandleAddName).Methods("POST", "OPTIONS").Name("new-exercise-name")
	router.HandleFunc("/exercise/set", handler.HandleHistory).Methods("GET", "OPTIONS").Name("list-exercise-sets")
	router.HandleFunc("/exercise/set", handler.HandleAddSet).Methods("POST", "OPTIONS").Name("new-exercise-set")
	router.HandleFunc("/exercise/set/{id}", handler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-exercise-set")
	router.HandleFunc("/exercise/pr", handler.HandlePersonalRecords).Methods("GET", "OPTIONS").Name("exercise-prs")
	router.HandleFunc("/exercise/graph", handler.HandleGraph).Methods("GET", "OPTIONS").Name("exercise-graph")
}

// StatusForError maps exercise errors onto HTTP status codes.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrNameNotFound), errors.Is(err, ErrSetNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNameExists):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func sessionUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return 0, false
	}
	return session.UserID, true
}

func (handler *Handler) HandleListNames(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.names.list")
	defer span.End()

	names, err := handler.names.ListNames(ctx)
	if err != nil {
		log.Errorf("failed to list exercise names: %s", err)
		http.Error(w, "failed to list exercise names", http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []ExerciseName{}
	}

	pkg.WriteJSON(w, names, http.StatusOK)
}

func (handler *Handler) HandleAddName(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.names.add")
	defer span.End()

	var req AddNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new exercise name, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	kind, err := ParseKind(req.Kind)
	if err != nil {
		http.Error(w, "invalid exercise kind", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.AddName(ctx, req.Name, kind)
	if err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			log.Errorf("failed to add exercise name [%s]: %s", req.Name, err)
			http.Error(w, "failed to add exercise name", status)
			return
		}
		http.Error(w, err.Error(), status)
		return
	}
	handler.names.Invalidate()

	log.Debugf("new exercise name added: %s [%s]", added.Name, added.Kind)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.sets.add")
	defer span.End()

	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new exercise set, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	kind, err := ParseKind(req.Kind)
	if err != nil {
		http.Error(w, "invalid exercise kind", http.StatusBadRequest)
		return
	}

	createdAt := time.Now()
	if req.CreatedAt != nil && !req.CreatedAt.IsZero() {
		createdAt = *req.CreatedAt
	}

	added, err := handler.repo.AddSet(ctx, NewSet{
		UserID:    userID,
		Name:      req.Name,
		Kind:      kind,
		Reps:      req.Reps,
		Weight:    req.Weight,
		CreatedAt: createdAt,
	})
	if err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			log.Errorf("failed to add exercise set [%s] for user %d: %s", req.Name, userID, err)
			http.Error(w, "failed to add exercise set", status)
			return
		}
		http.Error(w, err.Error(), status)
		return
	}

	// the name might have been created along with the set
	handler.names.Invalidate()
	handler.metricsManager.CounterSetsAdded.WithLabelValues(kind.String()).Inc()

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.sets.delete")
	defer span.End()

	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteSet(ctx, userID, id); err != nil {
		if errors.Is(err, ErrSetNotFound) {
			http.Error(w, "exercise set not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete exercise set %d: %s", id, err)
		http.Error(w, "exercise set not deleted", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DeleteSetResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.sets.history")
	defer span.End()

	userID, ok := sessionUserID(w, r)
	if !ok {
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
		span.SetAttributes(attribute.Int("limit", l))
	}

	history, err := handler.repo.History(ctx, userID, limit)
	if err != nil {
		log.Errorf("failed to get exercise history for user %d: %s", userID, err)
		http.Error(w, "failed to get exercise history", StatusForError(err))
		return
	}
	if history == nil {
		history = []Set{}
	}

	pkg.WriteJSON(w, history, http.StatusOK)
}

func (handler *Handler) HandlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.prs")
	defer span.End()

	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	prs, err := handler.repo.PersonalRecords(ctx, userID)
	if err != nil {
		log.Errorf("failed to get personal records for user %d: %s", userID, err)
		http.Error(w, "failed to get personal records", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, prs, http.StatusOK)
}

func (handler *Handler) HandleGraph(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.graph")
	defer span.End()

	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	graph, err := handler.repo.WeightedGraph(ctx, userID)
	if err != nil {
		log.Errorf("failed to get weighted graph for user %d: %s", userID, err)
		http.Error(w, "failed to get exercise graph", http.StatusInternalServerError)
		return
	}
	if graph == nil {
		graph = []ExerciseGraph{}
	}

	pkg.WriteJSON(w, graph, http.StatusOK)
}
