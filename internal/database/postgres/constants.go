package postgres

// PostgreSQL error codes
const (
	pgCodeUniqueViolation = "23505"
)
