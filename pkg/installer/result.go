package installer

// ResultStatus describes the outcome of processing a single mapping.
type ResultStatus string

const (
	// StatusLinked means a new symlink was created.
	StatusLinked ResultStatus = "linked"

	// StatusRefreshed means an existing symlink was re-pointed at the
	// current source.
	StatusRefreshed ResultStatus = "refreshed"

	// StatusBackedUp means a real file or directory was renamed to a
	// timestamped backup before linking.
	StatusBackedUp ResultStatus = "backed-up"

	// StatusSkipped means the operator declined to replace an existing
	// file or directory, or the target was not ours to touch.
	StatusSkipped ResultStatus = "skipped"

	// StatusNoSource means the repository does not contain the mapped
	// subdirectory; the mapping is treated as an optional feature not
	// present in this checkout.
	StatusNoSource ResultStatus = "no-source"

	// StatusRemoved means an unlink run deleted the symlink.
	StatusRemoved ResultStatus = "removed"

	// StatusMissing means there was nothing at the target path.
	StatusMissing ResultStatus = "missing"

	// StatusFailed means a filesystem operation failed for this mapping.
	StatusFailed ResultStatus = "failed"
)

// Result reports what happened to one mapping.
type Result struct {
	// Name is the mapping name (repository subdirectory).
	Name string

	// Source is the repository path the link points at.
	Source string

	// Target is the linked location in the configuration directory.
	Target string

	// Backup is the path the previous target was renamed to, when a
	// backup was taken.
	Backup string

	Status ResultStatus

	// Err holds the filesystem error for StatusFailed results.
	Err error
}

// Failed reports whether this mapping's processing failed.
func (r Result) Failed() bool {
	return r.Status == StatusFailed
}

// AnyFailed reports whether any mapping in the run failed.
func AnyFailed(results []Result) bool {
	for _, r := range results {
		if r.Failed() {
			return true
		}
	}
	return false
}

// TargetState classifies a mapped target path without mutating it.
type TargetState string

const (
	// StateLinked means the target is a symlink to the current source.
	StateLinked TargetState = "linked"

	// StateStale means the target is a symlink pointing somewhere else.
	StateStale TargetState = "stale"

	// StateConflict means a real file or directory occupies the target.
	StateConflict TargetState = "conflict"

	// StateMissing means nothing exists at the target path.
	StateMissing TargetState = "missing"

	// StateNoSource means the repository lacks the mapped subdirectory.
	StateNoSource TargetState = "no-source"
)

// StatusEntry is the read-only view of one mapping, as shown by the
// status command.
type StatusEntry struct {
	Name   string
	Source string
	Target string

	// LinkDest is where the target symlink currently points, for
	// StateLinked and StateStale entries.
	LinkDest string

	State TargetState
}
