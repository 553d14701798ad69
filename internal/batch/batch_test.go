package batch

import (
	"context"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/dualwalk/grid"
)

func TestLoad(t *testing.T) {
	is := is.New(t)
	puzzles, err := Load("testdata/puzzles.yaml")
	is.NoErr(err)
	is.Equal(len(puzzles), 6)
	is.Equal(puzzles[0].Kind, KindPalindrome)
	is.Equal(puzzles[1].Cells[1][1], -1)
	is.Equal(puzzles[1].obstacles(), 1)
	is.Equal(puzzles[0].runes(), [][]rune{{'a', 'b'}, {'a', 'a'}})

	_, err = Load("testdata/missing.yaml")
	is.True(err != nil)
}

func TestDecodeRejects(t *testing.T) {
	is := is.New(t)
	cases := map[string]string{
		"no name":   "puzzles:\n  - kind: palindrome\n    rows: [a]\n",
		"bad kind":  "puzzles:\n  - name: x\n    kind: sum\n    rows: [a]\n",
		"no rows":   "puzzles:\n  - name: x\n    kind: palindrome\n",
		"mixed":     "puzzles:\n  - name: x\n    kind: collect\n    rows: [a]\n    cells: [[1]]\n",
		"duplicate": "puzzles:\n  - {name: x, kind: palindrome, rows: [a]}\n  - {name: x, kind: collect, cells: [[1]]}\n",
	}
	for name, doc := range cases {
		_, err := Decode(strings.NewReader(doc))
		is.True(errors.Is(err, ErrPuzzle)) // each case is a bad puzzle
		t.Log(name, err)
	}

	_, err := Decode(strings.NewReader("puzzles:\n  - name: x\n    kind: palindrome\n    rows: [a]\n    extra: 1\n"))
	is.True(err != nil) // unknown field
}

func TestFingerprint(t *testing.T) {
	is := is.New(t)
	a := Puzzle{Name: "a", Kind: KindCollect, Cells: [][]int{{1, 2}, {3, 4}}}
	b := Puzzle{Name: "b", Kind: KindCollect, Cells: [][]int{{1, 2}, {3, 4}}}
	c := Puzzle{Name: "c", Kind: KindCollect, Cells: [][]int{{12}, {3, 4}}}
	d := Puzzle{Name: "d", Kind: KindPalindrome, Rows: []string{"ab", "cd"}}
	e := Puzzle{Name: "e", Kind: KindPalindrome, Rows: []string{"abc", "d"}}
	is.Equal(a.Fingerprint(), b.Fingerprint()) // names are ignored
	is.True(a.Fingerprint() != c.Fingerprint())
	is.True(d.Fingerprint() != e.Fingerprint())
	is.True(a.SameGrid(b))
	is.True(!a.SameGrid(c))

	// A row holding a newline must not alias the grid split at that newline.
	wide := Puzzle{Name: "wide", Kind: KindPalindrome, Rows: []string{"ab\nba"}}
	tall := Puzzle{Name: "tall", Kind: KindPalindrome, Rows: []string{"ab", "ba"}}
	is.True(!wide.SameGrid(tall))
	is.True(wide.Fingerprint() != tall.Fingerprint())

	// Same digits, different row split.
	f := Puzzle{Name: "f", Kind: KindCollect, Cells: [][]int{{1, 2, 3, 4}}}
	g := Puzzle{Name: "g", Kind: KindCollect, Cells: [][]int{{1, 2}, {3, 4}}}
	is.True(!f.SameGrid(g))
}

func TestDistinctGrids(t *testing.T) {
	is := is.New(t)
	puzzles := []Puzzle{
		{Name: "a", Kind: KindCollect, Cells: [][]int{{1, 2}, {3, 4}}},
		{Name: "wide", Kind: KindPalindrome, Rows: []string{"ab\nba"}},
		{Name: "b", Kind: KindCollect, Cells: [][]int{{1, 2}, {3, 4}}},
		{Name: "tall", Kind: KindPalindrome, Rows: []string{"ab", "ba"}},
		{Name: "wide-again", Kind: KindPalindrome, Rows: []string{"ab\nba"}},
	}
	distinct, owner := distinctGrids(puzzles)
	is.Equal(len(distinct), 3)
	is.Equal(owner, []int{0, 1, 0, 2, 1})
	is.Equal(distinct[2].Name, "tall")
}

func TestRunKeepsSplitRowsApart(t *testing.T) {
	is := is.New(t)
	puzzles := []Puzzle{
		{Name: "wide", Kind: KindPalindrome, Rows: []string{"ab\nba"}},
		{Name: "tall", Kind: KindPalindrome, Rows: []string{"ab", "ba"}},
	}
	results, err := NewRunner(zerolog.Nop(), Options{Workers: 2}).Run(context.Background(), puzzles)
	is.NoErr(err)
	is.Equal(results[0].Value, int64(1)) // a,b,\n,b,a reads the same both ways
	is.Equal(results[1].Value, int64(2)) // both 2×2 paths are palindromes
}

func TestRun(t *testing.T) {
	is := is.New(t)
	puzzles, err := Load("testdata/puzzles.yaml")
	is.NoErr(err)

	for _, rolling := range []bool{false, true} {
		r := NewRunner(zerolog.Nop(), Options{Rolling: rolling, Workers: 2})
		results, err := r.Run(context.Background(), puzzles)
		is.NoErr(err)
		is.Equal(len(results), len(puzzles))

		want := map[string]int64{
			"two-by-two":           2,
			"blocked-centre":       40,
			"blocked-centre-again": 40,
			"corner-mismatch":      0,
			"walled":               0,
		}
		for i, res := range results {
			is.Equal(res.Name, puzzles[i].Name) // input order kept
			if res.Name == "ragged" {
				is.True(errors.Is(res.Err, grid.ErrNonRectangular))
				continue
			}
			is.NoErr(res.Err)
			is.Equal(res.Value, want[res.Name])
		}
	}
}

func TestRunCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	puzzles := []Puzzle{{Name: "x", Kind: KindPalindrome, Rows: []string{"a"}}}
	_, err := NewRunner(zerolog.Nop(), Options{}).Run(ctx, puzzles)
	is.True(errors.Is(err, context.Canceled))
}
