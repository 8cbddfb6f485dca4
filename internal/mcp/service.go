package mcp

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/2beens/gymtracker/internal/bodystats"
	"github.com/2beens/gymtracker/internal/exercises"
	"github.com/2beens/gymtracker/internal/users"
)

type exercisesReader interface {
	ListNames(ctx context.Context) ([]exercises.ExerciseName, error)
	History(ctx context.Context, userID int, limit *int) ([]exercises.Set, error)
	PersonalRecords(ctx context.Context, userID int) (*exercises.PersonalRecords, error)
	WeightedGraph(ctx context.Context, userID int) ([]exercises.ExerciseGraph, error)
}

type userLookup interface {
	GetByUsername(ctx context.Context, username string) (*users.User, error)
}

type bodyStatsReader interface {
	Latest(ctx context.Context, userID int) (*bodystats.Latest, error)
}

// contextService is what the tool handlers need, kept small for tests.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ListNames(ctx context.Context) ([]exercises.ExerciseName, error)
	History(ctx context.Context, username string, limit *int) ([]exercises.Set, error)
	PersonalRecords(ctx context.Context, username string) (*exercises.PersonalRecords, error)
	WeightedGraph(ctx context.Context, username string) ([]exercises.ExerciseGraph, error)
	BodyStats(ctx context.Context, username string) (*bodystats.Latest, error)
}

// ContextService resolves usernames and reads the training data for the MCP tools.
type ContextService struct {
	schema    SchemaRepo
	exercises exercisesReader
	users     userLookup
	bodyStats bodyStatsReader
}

func NewContextService(
	schema SchemaRepo,
	exercises exercisesReader,
	users userLookup,
	bodyStats bodyStatsReader,
) *ContextService {
	return &ContextService{
		schema:    schema,
		exercises: exercises,
		users:     users,
		bodyStats: bodyStats,
	}
}

// GetSchema returns the training tables schema as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetTrainingColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Gymtracker DB Schema\n\nNo training tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	var b strings.Builder
	b.WriteString("# Gymtracker DB Schema\n\n")
	for _, tableName := range slices.Sorted(maps.Keys(byTable)) {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) userID(ctx context.Context, username string) (int, error) {
	if strings.TrimSpace(username) == "" {
		return 0, fmt.Errorf("%w: username required", users.ErrValidation)
	}
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *ContextService) ListNames(ctx context.Context) ([]exercises.ExerciseName, error) {
	return s.exercises.ListNames(ctx)
}

func (s *ContextService) History(ctx context.Context, username string, limit *int) ([]exercises.Set, error) {
	userID, err := s.userID(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.exercises.History(ctx, userID, limit)
}

func (s *ContextService) PersonalRecords(ctx context.Context, username string) (*exercises.PersonalRecords, error) {
	userID, err := s.userID(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.exercises.PersonalRecords(ctx, userID)
}

func (s *ContextService) WeightedGraph(ctx context.Context, username string) ([]exercises.ExerciseGraph, error) {
	userID, err := s.userID(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.exercises.WeightedGraph(ctx, userID)
}

func (s *ContextService) BodyStats(ctx context.Context, username string) (*bodystats.Latest, error) {
	userID, err := s.userID(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.bodyStats.Latest(ctx, userID)
}
