// Package flags carries the condition outcome of an arithmetic, comparison or
// bit primitive as an explicit value.
//
// Every primitive that would set a condition code returns an Outcome next to
// its result. Branching code reads Outcome.Carry and Outcome.Zero of that
// call's return value; there is no status register and no shared flag
// variable.
package flags
