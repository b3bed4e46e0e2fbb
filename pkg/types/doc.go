// Package types defines the Input, Output, Middleware and Application
// contracts, the dispatch Signal, the fault model, and the standard errors
// for the trellis CLI framework.
//
// Implementations live under internal/; pkg/shell exposes their factories.
package types
