// Package domain defines the core business entities for jobtread-mcp.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ResourceType: the categories of upstream record (project, customer, document)
//   - SearchQuery / SearchResult: a free-text query and its uniform hits
//   - FetchRequest / FetchResult: resolution of one id to its full content
//   - RawRecord: a decoded upstream record before normalisation
//   - Credentials / Settings: process-wide configuration values
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
