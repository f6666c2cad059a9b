package vacation_test

import (
	"context"
	"sync"
)

type profileMock struct {
	DisplayNameFunc    func(ctx context.Context) (string, error)
	SetDisplayNameFunc func(ctx context.Context, name string) error

	mu    sync.Mutex
	calls struct {
		DisplayName    int
		SetDisplayName []string
	}
}

func (m *profileMock) DisplayName(ctx context.Context) (string, error) {
	m.mu.Lock()
	m.calls.DisplayName++
	m.mu.Unlock()
	return m.DisplayNameFunc(ctx)
}

func (m *profileMock) SetDisplayName(ctx context.Context, name string) error {
	m.mu.Lock()
	m.calls.SetDisplayName = append(m.calls.SetDisplayName, name)
	m.mu.Unlock()
	if m.SetDisplayNameFunc == nil {
		return nil
	}
	return m.SetDisplayNameFunc(ctx, name)
}

func (m *profileMock) written() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls.SetDisplayName...)
}

func (m *profileMock) reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.DisplayName
}
