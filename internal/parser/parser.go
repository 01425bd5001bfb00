// Package parser reads the compact fixture description: a case count, then per
// case a unit count followed by three lines per unit (monitor, static, dynamic).
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hvac_fixtures/internal/models"
)

// Fields per input line kind.
const (
	monitorFields = 2
	staticFields  = 11
	dynamicFields = 7
)

// ErrEmptyInput is returned when the input holds no case count line.
var ErrEmptyInput = errors.New("empty input: missing case count")

// ParseError reports a malformed input line. Line is 1-based.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse reads the whole description from r and builds every case. Unit ids start
// at models.FirstUnitID in each case. Fields beyond those a line needs are ignored.
func Parse(r io.Reader) ([]models.Case, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	p := &lineReader{lines: lines}
	head, err := p.ints(1, "case count")
	if err != nil {
		return nil, err
	}
	total := head[0]
	if total < 0 {
		return nil, &ParseError{Line: p.pos, Msg: fmt.Sprintf("negative case count %d", total)}
	}

	cases := make([]models.Case, 0, total)
	for n := 1; n <= total; n++ {
		c, err := p.parseCase(n)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", n, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

// lineReader walks the input positionally; pos is the 1-based number of the
// last line consumed.
type lineReader struct {
	lines []string
	pos   int
}

func (p *lineReader) ints(n int, what string) ([]int, error) {
	if p.pos >= len(p.lines) {
		return nil, &ParseError{Line: p.pos + 1, Msg: "unexpected end of input, expected " + what}
	}
	p.pos++
	fields := strings.Fields(p.lines[p.pos-1])
	if len(fields) < n {
		return nil, &ParseError{
			Line: p.pos,
			Msg:  fmt.Sprintf("%s: want %d fields, got %d", what, n, len(fields)),
		}
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, &ParseError{
				Line: p.pos,
				Msg:  fmt.Sprintf("%s: field %d %q is not an integer", what, i+1, fields[i]),
			}
		}
		out[i] = v
	}
	return out, nil
}

func (p *lineReader) parseCase(number int) (models.Case, error) {
	head, err := p.ints(1, "unit count")
	if err != nil {
		return models.Case{}, err
	}
	count := head[0]
	if count < 0 {
		return models.Case{}, &ParseError{Line: p.pos, Msg: fmt.Sprintf("negative unit count %d", count)}
	}

	c := models.Case{Number: number, Units: make([]models.Unit, 0, count)}
	for i := 0; i < count; i++ {
		u, err := p.parseUnit(models.FirstUnitID + i)
		if err != nil {
			return models.Case{}, err
		}
		c.Units = append(c.Units, u)
	}
	return c, nil
}

func (p *lineReader) parseUnit(unitID int) (models.Unit, error) {
	mon, err := p.ints(monitorFields, "monitor line")
	if err != nil {
		return models.Unit{}, err
	}
	st, err := p.ints(staticFields, "static line")
	if err != nil {
		return models.Unit{}, err
	}
	dyn, err := p.ints(dynamicFields, "dynamic line")
	if err != nil {
		return models.Unit{}, err
	}

	return models.Unit{
		Monitor: models.NewMonitor(mon[0], mon[1], unitID),
		Static: models.NewStatic(
			models.Capabilities{Auto: st[0], Heat: st[1], Cool: st[2], Custom: st[3]},
			models.Range{Lower: st[4], Upper: st[5]},
			models.Range{Lower: st[6], Upper: st[7]},
			models.Range{Lower: st[8], Upper: st[9]},
			models.DeadBandFromWire(st[10]),
			unitID,
		),
		Dynamic: models.NewDynamic(
			dyn[0],
			models.Range{Lower: dyn[1], Upper: dyn[2]},
			models.Range{Lower: dyn[3], Upper: dyn[4]},
			models.Range{Lower: dyn[5], Upper: dyn[6]},
			unitID,
		),
	}, nil
}
