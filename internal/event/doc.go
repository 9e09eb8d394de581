// Package event defines the closed event taxonomy and record envelope used by
// the game-log write path.
//
// Every record carries the temporal header (game, year, season, phase) plus a
// kind tag that resolves, at read time, which payload schema the row uses. The
// registry is exhaustive and closed: adding an event kind means adding a
// registry entry, never registering at runtime.
package event
