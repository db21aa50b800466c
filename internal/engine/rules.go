// internal/engine/rules.go
package engine

/*
 * Ordered rule-table machinery.
 *
 * The state resolver and DOT classifier are long priority cascades:
 * evaluate entries top to bottom, first match wins. Modeling them as
 * explicit (predicate, outcome) tables keeps the precedence order
 * visible in one place, lets each entry be tested in isolation, and
 * makes extension an append rather than an if/else edit.
 *
 * Each entry's predicate returns the match decision plus the reasoning
 * text for the trail. Tables are evaluated in declaration order; a table
 * must end in a catch-all entry so evaluation always produces an outcome
 * and a reason.
 */

// ruleEntry is one (predicate, outcome) pair of an ordered rule table.
// The predicate reports whether the entry applies and, when it does, the
// human-readable justification naming the values that matched.
type ruleEntry[E any, O any] struct {
	name    string
	applies func(ev E) (bool, string)
	outcome O
}

// evalRules walks the table in order and returns the first matching
// entry's outcome and reason. The boolean is false only when no entry
// matched, which indicates a table missing its catch-all entry.
func evalRules[E any, O any](table []ruleEntry[E, O], ev E) (O, string, bool) {
	for _, entry := range table {
		if ok, reason := entry.applies(ev); ok {
			return entry.outcome, reason, true
		}
	}
	var zero O
	return zero, "", false
}

// always is a catch-all predicate for the final entry of a rule table.
func always[E any](reason string) func(E) (bool, string) {
	return func(E) (bool, string) { return true, reason }
}
