// Package services contains domain services that coordinate behavior across
// aggregates and inject swappable policies into the domain.
//
// WorkflowEngine is the entry point for advancing a procurement order: it
// checks that the acting role may write the order in its current status,
// that the requested target is the legal successor, and routes the caller's
// typed edit to the matching aggregate transition.
package services
