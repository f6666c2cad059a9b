package tool

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type vacationSvc interface {
	enterVacationSvc
	returnFromVacationSvc
}

// NewServer creates an MCP server with the vacation tools. now supplies the
// clock used for the default date; nil means time.Now.
func NewServer(svc vacationSvc, now func() time.Time) *mcp.Server {
	if now == nil {
		now = time.Now
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "slack-vacation", Version: "v1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "enter_vacation",
		Description: "Append a vacation marker like (04/01休) to the Slack display name",
	}, NewEnterVacation(svc, now).EnterVacation)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "return_from_vacation",
		Description: "Remove the vacation marker from the Slack display name",
	}, NewReturnFromVacation(svc).ReturnFromVacation)

	return server
}
