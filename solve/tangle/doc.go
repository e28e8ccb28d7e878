// Package tangle implements tangle learning: recursively peel
// tangle-attractor regions starting from the highest remaining priority,
// keeping only the ones that close (every member has a witnessed path back
// inside). Closed regions become dominions, pooled by winner and grown once
// more per round; regions that don't close are discarded. Known tangles
// are absorbed by a later round's attractor once their escapes land inside
// the growing region.
package tangle
