package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CellFunc maps the rune found at xy to a cell value. Returning false leaves
// the cell unset; returning an error aborts the parse.
type CellFunc[T any] func(xy Xy, r rune) (T, bool, error)

// Runes stores every rune as-is.
func Runes() CellFunc[rune] {
	return func(_ Xy, r rune) (rune, bool, error) {
		return r, true, nil
	}
}

// RunesExcept stores every rune except the given blanks, which stay unset.
func RunesExcept(blanks ...rune) CellFunc[rune] {
	return func(_ Xy, r rune) (rune, bool, error) {
		for _, b := range blanks {
			if r == b {
				return 0, false, nil
			}
		}
		return r, true, nil
	}
}

// Digits stores '0'–'9' as ints and leaves '.' unset.
// Any other rune yields ErrInvalidDigit.
func Digits() CellFunc[int] {
	return func(_ Xy, r rune) (int, bool, error) {
		switch {
		case r == '.':
			return 0, false, nil
		case r >= '0' && r <= '9':
			return int(r - '0'), true, nil
		}
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidDigit, r)
	}
}

// Parse reads r line by line and inserts one cell per rune: rune i of line j
// lands at (i, j). Trailing '\r' is dropped. Lines may differ in length;
// the bounding box covers every rune read, including those fn leaves unset.
func Parse[T any](r io.Reader, fn CellFunc[T]) (*Grid[T], error) {
	g := Empty[T]()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	y := 0
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		x := 0
		for _, ch := range line {
			xy := Xy{X: x, Y: y}
			v, ok, err := fn(xy, ch)
			if err != nil {
				return nil, &ParseError{Line: y + 1, Column: x + 1, Err: err}
			}
			if ok {
				g.Insert(xy, v)
			} else {
				g.Grow(xy)
			}
			x++
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if y == 0 {
		return nil, ErrEmptyInput
	}
	return g, nil
}

// ParseString is Parse over an in-memory string.
func ParseString[T any](s string, fn CellFunc[T]) (*Grid[T], error) {
	return Parse(strings.NewReader(s), fn)
}

// ParsePoints reads one "x,y" pair per line and inserts fn(xy) at each.
// Blank lines are skipped. Only the first limit points are inserted when
// limit > 0; the rest are returned in input order.
func ParsePoints[T any](r io.Reader, limit int, fn func(Xy) T) (*Grid[T], []Xy, error) {
	g := Empty[T]()
	var rest []Xy
	sc := bufio.NewScanner(r)
	line, seen := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		xy, err := parsePoint(text)
		if err != nil {
			return nil, nil, &ParseError{Line: line, Err: err}
		}
		if limit > 0 && seen >= limit {
			rest = append(rest, xy)
		} else {
			g.Insert(xy, fn(xy))
		}
		seen++
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if seen == 0 {
		return nil, nil, ErrEmptyInput
	}
	return g, rest, nil
}

func parsePoint(s string) (Xy, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Xy{}, fmt.Errorf("%w: %q", ErrMalformedPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Xy{}, fmt.Errorf("%w: %q: %v", ErrMalformedPoint, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Xy{}, fmt.Errorf("%w: %q: %v", ErrMalformedPoint, s, err)
	}
	return Xy{X: x, Y: y}, nil
}
