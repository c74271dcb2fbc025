package constants

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// DefaultPriority is applied to tasks created without an explicit priority.
const DefaultPriority = "medium"
