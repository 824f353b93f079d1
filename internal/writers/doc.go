// Package writers turns primer pairs into serialized outputs.
//
// Each writer runs on its own goroutine behind a channel, so pair
// generation never blocks on formatting. Text and BED stream unless
// sorting is requested; JSON always buffers. JSON/JSONL go through
// pkg/api (v1) for a stable wire format.
package writers
