// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Dispatcher is the query core: it validates tool calls, fans search
// out across resource types, applies the per-call timeout and single-retry
// policy, and routes records through the normaliser.
package services
