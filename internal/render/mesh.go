// Package render draws simulation grids as the triangular tessellation they
// model, either as console text or as RGBA pixels for the GUI build.
package render

import (
	"strconv"
	"strings"

	"github.com/technolapin/triangle-automata/internal/sim"
)

// Mesh renders the display buffer as an ASCII triangle tessellation:
//
//	·-----·
//	 \ 2 / \
//	  \ / 3 \
//	   ·-----·
//
// Cells at even x+y are upward triangles, odd ones downward. Every label
// occupies three columns between the mesh walls.
func Mesh(size sim.Size, cells []uint8) string {
	return MeshFunc(size, cells, Label)
}

// MeshFunc is Mesh with a custom per-cell formatter. The formatter must
// return a string with a visible width of exactly three columns; ANSI styling
// around the label is fine.
func MeshFunc(size sim.Size, cells []uint8, format func(uint8) string) string {
	w, h := size.W, size.H
	if w <= 0 || h <= 0 || len(cells) < w*h {
		return ""
	}
	cell := func(x, y int) string { return format(cells[y*w+x]) }

	var b strings.Builder
	border := func(indent string, from int) {
		b.WriteString(indent)
		b.WriteString("·")
		for i := from; i < w; i += 2 {
			b.WriteString("-----·")
		}
		b.WriteByte('\n')
	}

	border("      ", 1)
	for j := 0; j < h; j += 2 {
		b.WriteString("     /")
		for i := 1; i < w; i += 2 {
			b.WriteString(" \\" + cell(i, j) + "/")
		}
		if w%2 == 1 {
			b.WriteString(" \\")
		}
		b.WriteByte('\n')

		b.WriteString("    ")
		for i := 0; i < w; i += 2 {
			b.WriteString("/" + cell(i, j) + "\\ ")
		}
		if w%2 == 0 {
			b.WriteString("/")
		}
		b.WriteByte('\n')

		border("   ", 0)

		if j+1 == h {
			break
		}

		b.WriteString("    ")
		for i := 0; i < w; i += 2 {
			b.WriteString("\\" + cell(i, j+1) + "/ ")
		}
		if w%2 == 0 {
			b.WriteString("\\")
		}
		b.WriteByte('\n')

		b.WriteString("     \\")
		for i := 1; i < w; i += 2 {
			b.WriteString(" /" + cell(i, j+1) + "\\")
		}
		if w%2 == 1 {
			b.WriteString(" /")
		}
		b.WriteByte('\n')

		border("      ", 1)
	}
	return b.String()
}

// Label is the default cell formatter: the level centered in three columns,
// blank when zero.
func Label(level uint8) string {
	if level == 0 {
		return "   "
	}
	return center3(strconv.Itoa(int(level)))
}

func center3(s string) string {
	switch len(s) {
	case 0:
		return "   "
	case 1:
		return " " + s + " "
	case 2:
		return s + " "
	default:
		return s[:3]
	}
}
