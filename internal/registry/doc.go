// Package registry canonicalizes a loaded schema model and validates its
// referential integrity. Expansion only ever consumes a *registry.Schema,
// never a raw config model.
package registry
