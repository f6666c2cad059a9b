package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ReturnFromVacationRequest struct{}

type returnFromVacationSvc interface {
	Return(ctx context.Context) (string, error)
}

func NewReturnFromVacation(svc returnFromVacationSvc) *ReturnFromVacation {
	return &ReturnFromVacation{svc: svc}
}

type ReturnFromVacation struct {
	svc returnFromVacationSvc
}

func (t *ReturnFromVacation) ReturnFromVacation(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ReturnFromVacationRequest,
) (*mcp.CallToolResult, DisplayNameResponse, error) {
	name, err := t.svc.Return(ctx)
	if err != nil {
		return nil, DisplayNameResponse{}, fmt.Errorf("svc.Return failed: %w", err)
	}

	return nil, DisplayNameResponse{DisplayName: name}, nil
}
