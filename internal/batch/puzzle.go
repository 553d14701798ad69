// Package batch evaluates named puzzle grids read from YAML. It is the
// reference caller of the palindrome and collect packages: it owns grid
// decoding, runs puzzles concurrently and evaluates identical grids once.
package batch

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dualwalk/collect"
)

// ErrPuzzle indicates a malformed puzzle entry.
var ErrPuzzle = errors.New("batch: invalid puzzle")

// Kind names the operation applied to a puzzle grid.
type Kind string

const (
	// KindPalindrome counts palindromic corner-to-corner paths over Rows.
	KindPalindrome Kind = "palindrome"
	// KindCollect maximizes the two-walker collection over Cells.
	KindCollect Kind = "collect"
)

// Puzzle is one named grid. Palindrome puzzles use Rows, one string per
// grid row and one rune per cell; collect puzzles use Cells.
type Puzzle struct {
	Name  string   `yaml:"name"`
	Kind  Kind     `yaml:"kind"`
	Rows  []string `yaml:"rows,omitempty"`
	Cells [][]int  `yaml:"cells,omitempty"`
}

type document struct {
	Puzzles []Puzzle `yaml:"puzzles"`
}

// Load reads a puzzle set from path.
func Load(path string) ([]Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open puzzle set")
	}
	defer f.Close()

	puzzles, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return puzzles, nil
}

// Decode parses a YAML puzzle set and validates every entry.
// Unknown fields are rejected.
func Decode(r io.Reader) ([]Puzzle, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode puzzle set")
	}
	for i, p := range doc.Puzzles {
		if err := p.validate(); err != nil {
			return nil, errors.Wrapf(err, "puzzle #%d", i)
		}
	}
	if dups := lo.FindDuplicatesBy(doc.Puzzles, func(p Puzzle) string { return p.Name }); len(dups) > 0 {
		return nil, errors.Wrapf(ErrPuzzle, "duplicate name %q", dups[0].Name)
	}

	return doc.Puzzles, nil
}

// validate checks the shape a puzzle needs before it reaches the solvers.
// Rectangularity is left to the solvers, which report it per puzzle.
func (p Puzzle) validate() error {
	if p.Name == "" {
		return errors.Wrap(ErrPuzzle, "missing name")
	}
	switch p.Kind {
	case KindPalindrome:
		if len(p.Rows) == 0 || len(p.Cells) > 0 {
			return errors.Wrapf(ErrPuzzle, "%s: palindrome puzzles take rows only", p.Name)
		}
	case KindCollect:
		if len(p.Cells) == 0 || len(p.Rows) > 0 {
			return errors.Wrapf(ErrPuzzle, "%s: collect puzzles take cells only", p.Name)
		}
	default:
		return errors.Wrapf(ErrPuzzle, "%s: unknown kind %q", p.Name, p.Kind)
	}
	return nil
}

// runes splits Rows into a rune grid.
func (p Puzzle) runes() [][]rune {
	return lo.Map(p.Rows, func(row string, _ int) []rune { return []rune(row) })
}

// content encodes the kind and grid exactly: every row is prefixed with
// its length, so distinct grids never share an encoding.
func (p Puzzle) content() []byte {
	buf := append([]byte(p.Kind), 0)
	buf = strconv.AppendInt(buf, int64(len(p.Rows)), 10)
	buf = append(buf, '|')
	for _, row := range p.Rows {
		buf = strconv.AppendInt(buf, int64(len(row)), 10)
		buf = append(buf, ':')
		buf = append(buf, row...)
	}
	buf = strconv.AppendInt(buf, int64(len(p.Cells)), 10)
	buf = append(buf, '|')
	for _, row := range p.Cells {
		buf = strconv.AppendInt(buf, int64(len(row)), 10)
		buf = append(buf, ':')
		for _, v := range row {
			buf = strconv.AppendInt(buf, int64(v), 10)
			buf = append(buf, ',')
		}
	}
	return buf
}

// Fingerprint hashes the kind and grid content, ignoring the name.
// Equal fingerprints only bucket candidates; equality is decided on content.
func (p Puzzle) Fingerprint() uint64 {
	return xxhash.Sum64(p.content())
}

// SameGrid reports whether p and q have the same kind and grid content.
func (p Puzzle) SameGrid(q Puzzle) bool {
	return bytes.Equal(p.content(), q.content())
}

// distinctGrids returns the puzzles with pairwise different grids and, for
// every input puzzle, the index of its representative in that slice.
func distinctGrids(puzzles []Puzzle) ([]Puzzle, []int) {
	var distinct []Puzzle
	owner := make([]int, len(puzzles))
	buckets := make(map[uint64][]int)
	for i, p := range puzzles {
		fp := p.Fingerprint()
		k, found := lo.Find(buckets[fp], func(d int) bool { return distinct[d].SameGrid(p) })
		if !found {
			k = len(distinct)
			distinct = append(distinct, p)
			buckets[fp] = append(buckets[fp], k)
		}
		owner[i] = k
	}
	return distinct, owner
}

// obstacles counts blocked cells of a collect puzzle.
func (p Puzzle) obstacles() int {
	return lo.SumBy(p.Cells, func(row []int) int {
		return lo.Count(row, collect.Obstacle)
	})
}
