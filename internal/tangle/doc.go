// Package tangle holds the rules of the tile puzzle: tiles whose twelve
// boundary points are wired into six paths, the board they sit on, and the
// session that walks a player token along the paths.
//
// Points and sides are numbered counter-clockwise from the north-east side.
// Every tile keeps its wiring in a local frame; rotating a tile only changes
// how that frame maps onto the board. All lookups go through the local frame.
package tangle
