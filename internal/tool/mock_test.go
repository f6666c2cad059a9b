package tool_test

import (
	"context"
)

type vacationSvcMock struct {
	EnterFunc  func(ctx context.Context, date string) (string, error)
	ReturnFunc func(ctx context.Context) (string, error)
}

func (m *vacationSvcMock) Enter(ctx context.Context, date string) (string, error) {
	return m.EnterFunc(ctx, date)
}

func (m *vacationSvcMock) Return(ctx context.Context) (string, error) {
	return m.ReturnFunc(ctx)
}
