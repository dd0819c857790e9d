// Package repo contains the PostgreSQL implementation of the repository ports.
//
// The repository is the classification boundary for storage failures:
//   - a syntactically malformed id never reaches the database and maps to
//     a validation error
//   - pgx.ErrNoRows maps to a not-found error for the resource kind
//   - a unique-constraint violation on users.email maps to a conflict error
//   - anything else is returned as-is and rendered as an internal error
//     at the response boundary
package repo
