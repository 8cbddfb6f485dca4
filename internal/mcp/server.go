package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the gymtracker MCP server.
// Used both by cmd/gymtracker_mcp (stdio) and by the backend at /mcp (streamable HTTP).
func NewServer(service contextService, version string) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymtracker",
		Version: version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gymtracker_schema",
		Description: "Returns the DB schema of the training tables (exercise_name, exercise_set, user_info_ts): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercise_names",
		Description: "Returns every known exercise name with its kind (weighted or bodyweight).",
	}, h.ListExerciseNamesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_history",
		Description: "Returns the logged sets of a user, newest first. Args: username; optional: limit. Weighted sets carry weight and reps, bodyweight sets only reps.",
	}, h.GetExerciseHistoryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Returns up to three best distinct records per exercise for a user. Weighted records are ordered by weight then reps, bodyweight records by reps.",
	}, h.GetPersonalRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weighted_graph",
		Description: "Returns weighted sets of a user grouped by exercise name and day (YYYY-MM-DD, UTC). Use for progression over time.",
	}, h.GetWeightedGraphTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_body_stats",
		Description: "Returns the latest recorded height, weight, muscle mass and body fat of a user, each with the time it was recorded.",
	}, h.GetBodyStatsTool())

	return s
}
