package ghcli

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"
)

// MockRunner is a test double for Runner. It is safe for concurrent use.
type MockRunner struct {
	mu sync.Mutex

	// Responses maps joined args to a response. Exact matches win, then the
	// longest matching prefix.
	Responses map[string]MockResponse

	// Handler, when set, answers calls that match no entry in Responses.
	Handler func(args []string) MockResponse

	calls [][]string
}

// MockResponse is a canned process outcome.
type MockResponse struct {
	Stdout string
	Stderr string
	Err    error
}

// ErrExit simulates a process that exited non-zero.
var ErrExit = errors.New("exit status 1")

// NotFound simulates a missing executable.
var NotFound = MockResponse{Err: &exec.Error{Name: "gh", Err: exec.ErrNotFound}}

// NewMockRunner creates a new MockRunner.
func NewMockRunner() *MockRunner {
	return &MockRunner{Responses: make(map[string]MockResponse)}
}

// On registers a response for calls whose joined args equal or start with key.
func (m *MockRunner) On(key string, resp MockResponse) *MockRunner {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[key] = resp
	return m
}

// Run implements Runner.
func (m *MockRunner) Run(_ context.Context, _ string, args ...string) (string, string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, append([]string(nil), args...))
	resp, ok := m.match(strings.Join(args, " "))
	handler := m.Handler
	m.mu.Unlock()

	if !ok {
		if handler == nil {
			return "", "unexpected call: " + strings.Join(args, " "), ErrExit
		}
		resp = handler(args)
	}
	return resp.Stdout, resp.Stderr, resp.Err
}

func (m *MockRunner) match(full string) (MockResponse, bool) {
	if resp, ok := m.Responses[full]; ok {
		return resp, true
	}
	best := -1
	var found MockResponse
	for pattern, resp := range m.Responses {
		if strings.HasPrefix(full, pattern) && len(pattern) > best {
			best = len(pattern)
			found = resp
		}
	}
	return found, best >= 0
}

// Calls returns every recorded argument vector.
func (m *MockRunner) Calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.calls...)
}

// CallCount returns the number of calls whose joined args start with prefix.
func (m *MockRunner) CallCount(prefix string) int {
	n := 0
	for _, c := range m.Calls() {
		if strings.HasPrefix(strings.Join(c, " "), prefix) {
			n++
		}
	}
	return n
}
