package imports

import (
	"errors"
	"sort"
	"strings"
)

// Unclassified is the bucket index of a block holding a statement that could
// not be classified and was left in place.
const Unclassified = -1

// Block is a run of statements belonging to one bucket.
type Block struct {
	Bucket     int
	Statements []Statement
}

// Result is the ordered block sequence produced by Classify.
type Result struct {
	Blocks []Block

	// Advisories holds one *UnclassifiableStatementError per statement left
	// in place. They are informational; the statements are still in Blocks.
	Advisories []error
}

// Flatten returns the statements in output order.
func (r *Result) Flatten() []Statement {
	var out []Statement
	for _, b := range r.Blocks {
		out = append(out, b.Statements...)
	}
	return out
}

// String serializes the blocks, one statement per line and a blank line
// between blocks.
func (r *Result) String() string {
	parts := make([]string, 0, len(r.Blocks))
	for _, b := range r.Blocks {
		lines := make([]string, len(b.Statements))
		for i, s := range b.Statements {
			lines[i] = s.Text
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

// Err joins the advisories, or returns nil when there are none.
func (r *Result) Err() error {
	return errors.Join(r.Advisories...)
}

type positioned struct {
	pos  int
	stmt Statement
}

// Classify assigns each statement to the first bucket with a matching
// pattern and orders statements within a bucket by (specifier, input
// position). Blocks come out in bucket order with the catch-all last.
//
// A statement without a specifier splits the input: statements before and
// after it are classified separately and it keeps its place as a block of
// its own with bucket Unclassified.
//
// Classify is a projection: classifying Flatten() again with the same groups
// reproduces the same Result.
func Classify(statements []Statement, groups Groups) *Result {
	res := &Result{}
	var run []positioned
	flush := func() {
		res.Blocks = append(res.Blocks, classifyRun(run, groups)...)
		run = nil
	}

	for i, s := range statements {
		if !s.Valid {
			flush()
			res.Blocks = append(res.Blocks, Block{Bucket: Unclassified, Statements: []Statement{s}})
			res.Advisories = append(res.Advisories, &UnclassifiableStatementError{Index: i, Text: s.Text})
			continue
		}
		run = append(run, positioned{pos: i, stmt: s})
	}
	flush()
	return res
}

func classifyRun(run []positioned, groups Groups) []Block {
	if len(run) == 0 {
		return nil
	}

	buckets := make([][]positioned, groups.CatchAll()+1)
	for _, p := range run {
		b := groups.Assign(p.stmt)
		buckets[b] = append(buckets[b], p)
	}

	var blocks []Block
	for b, members := range buckets {
		if len(members) == 0 {
			continue
		}
		sort.Slice(members, func(i, j int) bool {
			si, sj := members[i].stmt.Specifier, members[j].stmt.Specifier
			if si != sj {
				return si < sj
			}
			return members[i].pos < members[j].pos
		})
		stmts := make([]Statement, len(members))
		for i, m := range members {
			stmts[i] = m.stmt
		}
		blocks = append(blocks, Block{Bucket: b, Statements: stmts})
	}
	return blocks
}
