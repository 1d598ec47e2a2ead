// Package entropy provides the random byte sources consumed by the primitive
// layer: the operating system generator for real use and a seeded,
// reproducible generator for tests and simulation.
package entropy
