package plateio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/commanderjcc/hotplate/internal/plate"
)

// Format controls cell rendering: each value is fixed to Precision
// decimal places and right-justified in Width characters.
type Format struct {
	Width     int
	Precision int
}

func DefaultFormat() Format {
	return Format{Width: 9, Precision: 3}
}

// Write renders p as text: one row per line, cells comma-separated with
// no trailing comma, newline-terminated. The same routine serves
// console and file output so the two never drift apart.
func Write(w io.Writer, p *plate.Plate, f Format) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < p.Rows(); row++ {
		for col := 0; col < p.Cols(); col++ {
			if col > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%*.*f", f.Width, f.Precision, p.At(row, col)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes p to path, overwriting any existing file. The file
// is closed on every exit path.
func WriteFile(path string, p *plate.Plate, f Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := Write(file, p, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}
