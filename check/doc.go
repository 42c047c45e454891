// Package check compares a computed path with the shortest paths a routing
// problem lists as acceptable.
//
// A computed path passes when its cost equals the cheapest expected cost and
// its city sequence equals one of the expected sequences. A failing check is
// an Outcome, not an error: it says whether the cost is wrong or whether the
// cost is right but the route is not listed, so callers can tell a defect
// from a legitimate unlisted alternative.
//
// Costs are compared with a relative tolerance of Epsilon.
package check
