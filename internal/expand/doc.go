// Package expand is the instance expansion and edge wiring engine. It turns
// a validated schema, a topology graph and a tile count into the concrete
// instance graph: every device instance implied by the instancing
// granularities, and every directed edge connecting message pins.
//
// Expansion is a pure function of its inputs. Instance and edge emission is
// tile-major, node-minor throughout, so two runs over identical inputs
// produce identical sequences.
package expand
