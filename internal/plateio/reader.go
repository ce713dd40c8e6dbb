package plateio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/commanderjcc/hotplate/internal/plate"
)

// ErrShortInput indicates the source ran out of tokens before rows*cols
// cells were filled.
var ErrShortInput = errors.New("plateio: input has fewer values than plate cells")

// Read fills a rows x cols plate from whitespace-separated numeric
// tokens in row-major order. Spaces and newlines are interchangeable.
// Non-numeric tokens and short input are reported as errors; surplus
// tokens after the last cell are ignored.
func Read(r io.Reader, rows, cols int) (*plate.Plate, error) {
	p, err := plate.New(rows, cols)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n := 0
	total := rows * cols
	for n < total && sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("plateio: token %d (%q): %w", n+1, sc.Text(), err)
		}
		p.Set(n/cols, n%cols, v)
		n++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if n < total {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrShortInput, n, total)
	}
	return p, nil
}

// ReadFile loads a plate from path. The file is closed on every exit
// path; an unopenable file is an error, reported to the caller rather
// than swallowed.
func ReadFile(path string, rows, cols int) (*plate.Plate, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	p, err := Read(file, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return p, nil
}
