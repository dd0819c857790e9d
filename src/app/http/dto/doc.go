// Package dto contains Data Transfer Objects for HTTP requests.
//
// Request types carry the per-endpoint validation schema as binding tags;
// the schema runs at the boundary, before any handler or storage logic.
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., CreateCardRequest)
package dto
