// Package research enriches a learning topic with key findings and
// resources from the search collaborator, degrading to a deterministic
// digest when the collaborator is unavailable.
package research

import (
	"context"
	"sync"
)

// SearchResult is one hit from the search collaborator.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Searcher is the search collaborator contract.
type Searcher interface {
	// Search returns up to maxResults hits for the query.
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}

// MockSearcher is a deterministic Searcher for testing. It returns canned
// result sets in FIFO order and records all queries.
type MockSearcher struct {
	mu      sync.Mutex
	results [][]SearchResult
	errs    []error
	Queries []string
}

// NewMockSearcher creates a MockSearcher. Add canned responses with
// AddResults or AddError.
func NewMockSearcher() *MockSearcher {
	return &MockSearcher{}
}

// AddResults queues a canned result set.
func (m *MockSearcher) AddResults(results []SearchResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, results)
	m.errs = append(m.errs, nil)
}

// AddError queues a canned failure.
func (m *MockSearcher) AddError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, nil)
	m.errs = append(m.errs, err)
}

// Search returns the next canned response. An empty queue reports no
// results rather than failing.
func (m *MockSearcher) Search(_ context.Context, query string, _ int) ([]SearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Queries = append(m.Queries, query)

	if len(m.results) == 0 {
		return nil, nil
	}

	results, err := m.results[0], m.errs[0]
	m.results = m.results[1:]
	m.errs = m.errs[1:]
	return results, err
}
