package queries

const (
	MaxListLimit    = 200
	DefaultPageSize = 12
)
