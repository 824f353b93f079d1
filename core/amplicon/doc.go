// Package amplicon pairs forward and reverse primer candidates into
// amplicons of a permitted size whose primers do not form dimers.
//
// Pair generation fans the forward pool out over a worker pool. Workers
// share the scorer and the reverse pool read-only; results are emitted in
// forward-pool order regardless of the number of workers.
package amplicon
