package headless

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-pixed/pixed/canvas"
)

const ansiReset = "\x1b[0m"

// WriteANSI prints the buffer using 24-bit color escape sequences, one line
// per buffer row. Cells that were never written are printed as spaces.
func WriteANSI(w io.Writer, b *canvas.Buffer) error {
	out := bufio.NewWriter(w)
	width, height := b.Size()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell, _ := b.Cell(x, y)
			if !cell.Set {
				fmt.Fprint(out, ansiReset+" ")
				continue
			}
			fg, bg, _ := cell.Style.Decompose()
			fmt.Fprint(out, sgr(fg, 38), sgr(bg, 48), string(cell.Rune))
		}
		fmt.Fprint(out, ansiReset+"\n")
	}
	return out.Flush()
}

// sgr selects c as the foreground (base 38) or background (base 48) color.
// Colors without an RGB value fall back to the terminal default.
func sgr(c tcell.Color, base int) string {
	if !c.Valid() {
		return fmt.Sprintf("\x1b[%dm", base+1)
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", base, r, g, b)
}
