package render

import (
	"strings"
	"testing"

	"github.com/technolapin/triangle-automata/internal/sim"
)

func TestMeshEvenWidth(t *testing.T) {
	got := Mesh(sim.Size{W: 2, H: 2}, []uint8{1, 2, 3, 4})
	want := strings.Join([]string{
		`      ·-----·`,
		`     / \ 2 /`,
		`    / 1 \ /`,
		`   ·-----·`,
		`    \ 3 / \`,
		`     \ / 4 \`,
		`      ·-----·`,
		``,
	}, "\n")
	if got != want {
		t.Fatalf("mesh mismatch:\n%s\nexpected:\n%s", got, want)
	}
}

func TestMeshOddWidthSingleRow(t *testing.T) {
	got := Mesh(sim.Size{W: 3, H: 1}, []uint8{1, 2, 3})
	want := strings.Join([]string{
		`      ·-----·`,
		`     / \ 2 / \`,
		`    / 1 \ / 3 \ `,
		`   ·-----·-----·`,
		``,
	}, "\n")
	if got != want {
		t.Fatalf("mesh mismatch:\n%q\nexpected:\n%q", got, want)
	}
}

func TestMeshZeroIsBlank(t *testing.T) {
	got := Mesh(sim.Size{W: 2, H: 1}, []uint8{0, 0})
	if strings.Contains(got, "0") {
		t.Fatalf("zero levels must render blank:\n%s", got)
	}
}

func TestMeshDegenerate(t *testing.T) {
	if got := Mesh(sim.Size{}, nil); got != "" {
		t.Fatalf("empty size must render nothing, got %q", got)
	}
	if got := Mesh(sim.Size{W: 4, H: 4}, []uint8{1}); got != "" {
		t.Fatalf("short buffer must render nothing, got %q", got)
	}
}

func TestMeshFuncCustomFormatter(t *testing.T) {
	got := MeshFunc(sim.Size{W: 2, H: 1}, []uint8{0, 1}, func(level uint8) string {
		if level == 0 {
			return " . "
		}
		return " # "
	})
	if !strings.Contains(got, "\\ # /") || !strings.Contains(got, "/ . \\") {
		t.Fatalf("custom labels missing:\n%s", got)
	}
}

func TestLabel(t *testing.T) {
	cases := map[uint8]string{
		0:   "   ",
		5:   " 5 ",
		10:  "10 ",
		255: "255",
	}
	for level, want := range cases {
		if got := Label(level); got != want {
			t.Errorf("Label(%d) = %q, expected %q", level, got, want)
		}
	}
}

func TestLightPalette(t *testing.T) {
	p := LightPalette(11)
	if len(p) != 11 {
		t.Fatalf("palette length %d, expected 11", len(p))
	}
	if p[0].R >= p[10].R {
		t.Fatal("palette must brighten with level")
	}
	for _, c := range p {
		if c.A != 255 {
			t.Fatal("palette colors must be opaque")
		}
	}
	if len(LightPalette(0)) < 2 {
		t.Fatal("degenerate palette request must still yield a usable ramp")
	}
}
