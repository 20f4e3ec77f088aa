// Package export writes a finished game to disk: a six-sheet xlsx workbook
// with the full configuration, probabilities, histories, utilities,
// equilibria and summary, and an SVG diagram of the game tree.
//
// File names come from NamingService: a sanitized prefix, the game shape
// (players, rounds, branching) and a minute-resolution timestamp, e.g.
//
//	Game_J2_R2_E2_20260830-1415.xlsx
//
// Existing files are never overwritten; ResolveConflict appends _1, _2, ...
// until a free name is found.
//
// The workbook is produced with excelize, the diagram with svgo. Terminal
// scenarios are drawn as double circles; once probabilities are assigned,
// edges carry "label (p)" annotations.
package export
