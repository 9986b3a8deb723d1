package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"k8s.io/klog/v2"
)

// ReadGridFile opens path and parses it with ReadGrid.
func ReadGridFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// ReadGrid parses "<rows> <cols>" followed by exactly rows map lines.
// Each line is padded with spaces or truncated to cols characters, so
// ragged input never fails; only missing lines do.
func ReadGrid(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyInput
	}
	header := strings.TrimSpace(sc.Text())
	if header == "" {
		return nil, ErrEmptyInput
	}
	rows, cols, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("got %d of %d rows: %w", i, rows, ErrTruncatedInput)
		}
		lines = append(lines, fitWidth(strings.TrimRight(sc.Text(), "\r"), cols))
	}
	klog.V(4).Infof("gridgraph: parsed %dx%d grid", rows, cols)

	return NewGrid(lines)
}

func parseHeader(line string) (rows, cols int, err error) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return 0, 0, fmt.Errorf("%q: %w", line, ErrBadHeader)
	}
	if rows, err = strconv.Atoi(f[0]); err != nil || rows < 1 {
		return 0, 0, fmt.Errorf("rows %q: %w", f[0], ErrBadHeader)
	}
	if cols, err = strconv.Atoi(f[1]); err != nil || cols < 1 {
		return 0, 0, fmt.Errorf("cols %q: %w", f[1], ErrBadHeader)
	}

	return rows, cols, nil
}

// fitWidth pads s with spaces or cuts it so it holds exactly cols runes.
func fitWidth(s string, cols int) string {
	rs := []rune(s)
	switch {
	case len(rs) < cols:
		return s + strings.Repeat(" ", cols-len(rs))
	case len(rs) > cols:
		return string(rs[:cols])
	}

	return s
}
