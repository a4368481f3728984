package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockpuzzle/internal/puzzle"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "List the piece catalog",
	Long:  `Shows every piece the generator can draw, with its weight and rotations.`,
	Args:  cobra.NoArgs,
	Run:   runPieces,
}

func runPieces(cmd *cobra.Command, args []string) {
	entries := puzzle.DefaultCatalog().Entries()

	fmt.Println("Pieces:")
	fmt.Println()

	for _, e := range entries {
		heavy := ""
		if e.Heavy() {
			heavy = "  (heavy)"
		}
		fmt.Printf("  #%-2d %-10s cells %d  weight %.1f%s\n", e.Piece.ID, e.Piece.Name, e.Piece.Size(), e.Weight, heavy)
		for _, line := range rotationRows(e.Piece) {
			fmt.Printf("      %s\n", line)
		}
		fmt.Println()
	}
}

// rotationRows draws the four rotations of p side by side.
func rotationRows(p puzzle.Piece) []string {
	var shapes [4][]string
	height, width := 0, 0
	for i := range shapes {
		shapes[i] = p.RotateN(i).Rows()
		height = max(height, len(shapes[i]))
		for _, row := range shapes[i] {
			width = max(width, len(row))
		}
	}

	lines := make([]string, height)
	for y := range height {
		var b strings.Builder
		for i, shape := range shapes {
			row := ""
			if y < len(shape) {
				row = shape[y]
			}
			if i > 0 {
				b.WriteString("   ")
			}
			b.WriteString(row + strings.Repeat(" ", width-len(row)))
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}
