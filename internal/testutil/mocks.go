// Package testutil provides test doubles for the domain ports.
package testutil

import (
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure mocks implement the domain ports.
var (
	_ domain.StateStore    = (*MockStateStore)(nil)
	_ domain.IDGenerator   = (*MockIDGenerator)(nil)
	_ domain.Logger        = (*MockLogger)(nil)
	_ domain.ConfigLoader  = (*MockConfigLoader)(nil)
	_ domain.ConfigManager = (*MockConfigManager)(nil)
)

// MockStateStore is a test double for domain.StateStore.
type MockStateStore struct {
	LoadErr   error
	SaveErr   error
	State     domain.State
	SaveCalls int
}

// NewMockStateStore creates a MockStateStore seeded with state.
func NewMockStateStore(state domain.State) *MockStateStore {
	return &MockStateStore{State: state.Clone()}
}

// Load returns the stored state or LoadErr.
func (m *MockStateStore) Load() (domain.State, error) {
	if m.LoadErr != nil {
		return domain.State{}, m.LoadErr
	}
	return m.State.Clone(), nil
}

// Save stores the state or returns SaveErr.
func (m *MockStateStore) Save(state domain.State) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.State = state.Clone()
	return nil
}

// MockIDGenerator returns "id-1", "id-2", ...
type MockIDGenerator struct {
	Calls int
}

// NewID returns the next deterministic ID.
func (m *MockIDGenerator) NewID() domain.TaskID {
	m.Calls++
	return domain.TaskID(fmt.Sprintf("id-%d", m.Calls))
}

// LogEntry is one recorded log call.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) record(level, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.record("debug", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.record("info", category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(category, msg string) { m.record("warn", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.record("error", category, msg) }

// Messages returns the recorded messages for the given level.
func (m *MockLogger) Messages(level string) []string {
	var msgs []string
	for _, e := range m.Entries {
		if e.Level == level {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config   *domain.Config
	LoadErr  error
	SourceFn func() []domain.ConfigInfo
}

// Load returns Config (or defaults) or LoadErr.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// Sources returns SourceFn() or nil.
func (m *MockConfigLoader) Sources() []domain.ConfigInfo {
	if m.SourceFn == nil {
		return nil
	}
	return m.SourceFn()
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr          error
	InitConfig       *domain.Config
	GlobalConfigInfo domain.ConfigInfo
	InitGlobalCalled bool
	InitForce        bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetGlobalConfigInfo returns GlobalConfigInfo.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitGlobalConfig records the call and returns InitErr.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config, force bool) error {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	m.InitForce = force
	return m.InitErr
}
