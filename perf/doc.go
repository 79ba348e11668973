// Package perf provides named timers and counters for the SP2 drivers,
// active only when ellpsp2cfg.Config.Debug is set. Disabled timers record
// nothing and cost a single branch per call.
package perf
