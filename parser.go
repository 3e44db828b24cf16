package ggrgen

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// magicHeader is the fixed first line of a GIMP gradient file.
const magicHeader = "GIMP Gradient"

// segmentFloatFields is the number of leading float fields on a segment line:
// left, mid, right and two RGBA colors.
const segmentFloatFields = 11

// Parse parses a GIMP gradient from bytes.
func Parse(data []byte, opt *ParseOptions) (*Gradient, error) {
	return Decode(bytes.NewReader(data), opt)
}

// Decode parses a GIMP gradient from reader.
func Decode(r io.Reader, opt *ParseOptions) (*Gradient, error) {
	popt := opt.normalize()

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		// Tolerate CRLF input; the header comparison is exact otherwise.
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	p := &parser{lines: lines, opt: popt}
	return p.parseGradient()
}

// DecodeFile parses a GIMP gradient from a file.
func DecodeFile(path string, opt *ParseOptions) (*Gradient, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b, opt)
}

// parser holds the line-oriented state for one gradient input.
type parser struct {
	lines []string     // Input split into lines
	opt   ParseOptions // Options for the parser
}

// parseGradient parses the whole gradient: header, name, count and segments.
func (p *parser) parseGradient() (*Gradient, error) {
	if len(p.lines) < 3 {
		return nil, fmt.Errorf("%w: expected header, name and segment count lines", ErrFormat)
	}
	if p.lines[0] != magicHeader {
		return nil, p.errorf(1, "not a GIMP gradient file")
	}

	name, err := p.parseNameLine(p.lines[1])
	if err != nil {
		return nil, err
	}

	countLit := strings.TrimSpace(p.lines[2])
	count, err := strconv.Atoi(countLit)
	if err != nil {
		return nil, p.errorf(3, "invalid segment count %q", countLit)
	}
	if count < 1 {
		return nil, p.errorf(3, "segment count must be positive, got %d", count)
	}
	if len(p.lines) < 3+count {
		return nil, p.errorf(3, "expected %d segment lines, got %d", count, len(p.lines)-3)
	}

	segs := make([]Segment, 0, count)
	for i := 0; i < count; i++ {
		seg, err := p.parseSegmentLine(p.lines[3+i], 4+i)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}

	if !p.opt.DisableOrderCheck {
		if err := p.checkOrder(segs); err != nil {
			return nil, err
		}
	}

	return &Gradient{Name: name, Segments: segs}, nil
}

// parseNameLine parses the "Name: <name>" line.
func (p *parser) parseNameLine(line string) (string, error) {
	key, val, ok := strings.Cut(line, ":")
	if !ok {
		return "", p.errorf(2, "expected \"Name: <name>\"")
	}
	if strings.TrimSpace(key) != "Name" {
		return "", p.errorf(2, "expected Name key, got %q", strings.TrimSpace(key))
	}

	return strings.TrimSpace(val), nil
}

// parseSegmentLine parses one segment line: eleven floats followed by at
// least two integers (blend, color space, optional color type).
func (p *parser) parseSegmentLine(line string, lineno int) (Segment, error) {
	fields := strings.Fields(line)
	if len(fields) < segmentFloatFields+2 {
		return Segment{}, p.errorf(lineno, "expected at least %d fields, got %d", segmentFloatFields+2, len(fields))
	}

	var f [segmentFloatFields]float64
	for i := 0; i < segmentFloatFields; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Segment{}, p.errorf(lineno, "invalid number %q", fields[i])
		}
		f[i] = v
	}

	ints := make([]int, 0, len(fields)-segmentFloatFields)
	for _, lit := range fields[segmentFloatFields:] {
		v, err := strconv.Atoi(lit)
		if err != nil {
			return Segment{}, p.errorf(lineno, "invalid integer %q", lit)
		}
		ints = append(ints, v)
	}

	seg := Segment{
		Left:       f[0],
		Mid:        f[1],
		Right:      f[2],
		Color1:     Color{R: f[3], G: f[4], B: f[5], A: f[6]},
		Color2:     Color{R: f[7], G: f[8], B: f[9], A: f[10]},
		Blend:      ints[0],
		ColorSpace: ints[1],
	}
	if len(ints) > 2 {
		seg.ColorType = ints[2]
	}

	return seg, nil
}

// checkOrder verifies the branch cascade precondition: breakpoints ordered
// within each segment and segments ascending along the domain.
func (p *parser) checkOrder(segs []Segment) error {
	for i, s := range segs {
		if s.Left > s.Mid || s.Mid > s.Right {
			return p.errorf(4+i, "segment breakpoints out of order: %v %v %v", s.Left, s.Mid, s.Right)
		}
		if i > 0 && s.Left <= segs[i-1].Left {
			return p.errorf(4+i, "segments not ascending along the domain")
		}
	}

	return nil
}

// errorf formats a parse failure with its input line number.
func (p *parser) errorf(line int, format string, args ...any) error {
	return fmt.Errorf("%w at line %d: %s", ErrFormat, line, fmt.Sprintf(format, args...))
}
