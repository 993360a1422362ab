package repository

import (
	"fmt"
	"strings"
)

// columnSet collects the columns a statement should write, in a fixed order,
// skipping the ones the caller left nil.
type columnSet struct {
	columns []string
	args    []any
}

func (c *columnSet) add(column string, value *string) {
	if value == nil {
		return
	}
	c.columns = append(c.columns, column)
	c.args = append(c.args, *value)
}

func (c *columnSet) empty() bool {
	return len(c.columns) == 0
}

// insert renders "(a,b) VALUES ($1,$2)".
func (c *columnSet) insert() string {
	params := make([]string, len(c.columns))
	for i := range c.columns {
		params[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("(%s) VALUES (%s)", strings.Join(c.columns, ", "), strings.Join(params, ", "))
}

// assignments renders "a = $n, b = $n+1" with placeholders starting after offset.
func (c *columnSet) assignments(offset int) string {
	sets := make([]string, len(c.columns))
	for i, column := range c.columns {
		sets[i] = fmt.Sprintf("%s = $%d", column, i+offset+1)
	}
	return strings.Join(sets, ", ")
}
