/* test_mocks.go
 * Contains the mock artifact loader shared by the tests in this package
 */

package api

import (
	"sync/atomic"

	"parlour-dashboard/api/artifacts"
)

// MockLoader implements artifacts.Interface for testing. Artifacts are served
// from in-memory maps; DetailGate, when set, blocks detail loads until the
// gate closes so tests can hold a load inflight.
type MockLoader struct {
	Artifacts map[string]*artifacts.GameArtifacts
	Details   map[string]*artifacts.SessionDetail

	ArtifactErr error
	DetailErr   error

	// DetailGate, when set, blocks each detail load until the gate closes;
	// DetailEntered, when set, receives a signal as each load begins
	DetailGate    chan struct{}
	DetailEntered chan struct{}

	ArtifactCalls atomic.Int64
	DetailCalls   atomic.Int64
}

var _ artifacts.Interface = (*MockLoader)(nil)

func (m *MockLoader) LoadGameArtifacts(gameType string, dataTypes []string) (*artifacts.GameArtifacts, error) {
	m.ArtifactCalls.Add(1)
	if m.ArtifactErr != nil {
		return nil, m.ArtifactErr
	}
	raw, ok := m.Artifacts[gameType]
	if !ok {
		return nil, artifacts.ErrArtifactNotFound
	}
	return raw, nil
}

func (m *MockLoader) LoadSessionDetail(gameType string, sessionID string) (*artifacts.SessionDetail, error) {
	m.DetailCalls.Add(1)
	if m.DetailEntered != nil {
		m.DetailEntered <- struct{}{}
	}
	if m.DetailGate != nil {
		<-m.DetailGate
	}
	if m.DetailErr != nil {
		return nil, m.DetailErr
	}
	return m.Details[sessionID], nil
}
