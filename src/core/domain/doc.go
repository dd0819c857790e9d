// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: User (account with profile and credential fields) and
//     Card (a shared photo card with an owner and a set of likers)
//   - Domain Errors: the classified error kinds every failure path
//     resolves to before a response is rendered
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
package domain
