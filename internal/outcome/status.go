// Package outcome defines the tagged result contract shared by every
// orchestrator component: each operation reports one of three statuses and
// failures are classified into a small, closed taxonomy.
package outcome

// Status tags the result of a component operation.
//
// Success means the operation completed with real collaborator output.
// Fallback means a collaborator call failed and deterministic substitute
// values were used instead. Error means the operation could not produce a
// usable result at all (persistence failures, invalid requests).
type Status string

const (
	Success  Status = "success"
	Fallback Status = "fallback"
	Error    Status = "error"
)

// Degraded reports whether the status indicates anything other than a
// genuine success.
func (s Status) Degraded() bool {
	return s != Success
}
