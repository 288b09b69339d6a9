// Package core provides the piece model for the Columns puzzle game:
// grid and pixel coordinates, rotation directions, colored blocks with a
// stable identity, and the two-block falling piece.
// This package is UI-agnostic and owns no board.
package core
