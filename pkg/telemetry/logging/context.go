package logging

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	// RunIDKey is the context key for the identifier of one validation run.
	RunIDKey contextKey = "run_id"

	// SpecFileKey is the context key for the spec file being processed.
	SpecFileKey contextKey = "spec_file"

	// CommandKey is the context key for the CLI command name.
	CommandKey contextKey = "command"
)

// NewRunID returns a fresh random run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// StartRun tags ctx with a newly generated run ID.
func StartRun(ctx context.Context) context.Context {
	return WithRunID(ctx, NewRunID())
}

// GetRunID retrieves the run ID from the context.
func GetRunID(ctx context.Context) string {
	if id, ok := ctx.Value(RunIDKey).(string); ok {
		return id
	}
	return ""
}

// WithSpecFile adds the spec file path to the context.
func WithSpecFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, SpecFileKey, path)
}

// GetSpecFile retrieves the spec file path from the context.
func GetSpecFile(ctx context.Context) string {
	if path, ok := ctx.Value(SpecFileKey).(string); ok {
		return path
	}
	return ""
}

// WithCommand adds the CLI command name to the context.
func WithCommand(ctx context.Context, cmd string) context.Context {
	return context.WithValue(ctx, CommandKey, cmd)
}

// GetCommand retrieves the CLI command name from the context.
func GetCommand(ctx context.Context) string {
	if cmd, ok := ctx.Value(CommandKey).(string); ok {
		return cmd
	}
	return ""
}

func extractContextFields(ctx context.Context) []any {
	var fields []any
	if id := GetRunID(ctx); id != "" {
		fields = append(fields, string(RunIDKey), id)
	}
	if cmd := GetCommand(ctx); cmd != "" {
		fields = append(fields, string(CommandKey), cmd)
	}
	if path := GetSpecFile(ctx); path != "" {
		fields = append(fields, string(SpecFileKey), path)
	}
	return fields
}
