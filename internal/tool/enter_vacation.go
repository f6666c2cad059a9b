package tool

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hal9000y/slack-vacation/internal/marker"
)

type EnterVacationRequest struct {
	Date string `json:"date,omitempty" jsonschema:"vacation date shown in the marker, MM/DD; defaults to tomorrow"`
}

type enterVacationSvc interface {
	Enter(ctx context.Context, date string) (string, error)
}

func NewEnterVacation(svc enterVacationSvc, now func() time.Time) *EnterVacation {
	return &EnterVacation{
		svc: svc,
		now: now,
	}
}

type EnterVacation struct {
	svc enterVacationSvc
	now func() time.Time
}

func (t *EnterVacation) EnterVacation(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EnterVacationRequest,
) (*mcp.CallToolResult, DisplayNameResponse, error) {
	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = marker.Tomorrow(t.now())
	}

	name, err := t.svc.Enter(ctx, date)
	if err != nil {
		return nil, DisplayNameResponse{}, fmt.Errorf("svc.Enter failed: %w", err)
	}

	return nil, DisplayNameResponse{DisplayName: name}, nil
}
