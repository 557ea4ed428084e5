package present

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ledgerview/internal/core"
)

// Column names a field of the display table.
type Column string

const (
	ColumnNum          Column = "num"
	ColumnDate         Column = "date"
	ColumnAdjustedDate Column = "adjusted_date"
	ColumnDescription  Column = "description"
	ColumnCredit       Column = "credit"
	ColumnDebit        Column = "debit"
	ColumnNet          Column = "net"
	ColumnBalance      Column = "balance"
)

// AllColumns lists every column in display order.
var AllColumns = []Column{
	ColumnNum, ColumnDate, ColumnAdjustedDate, ColumnDescription,
	ColumnCredit, ColumnDebit, ColumnNet, ColumnBalance,
}

// DefaultColumns is what the table shows when the caller does not choose.
var DefaultColumns = []Column{ColumnDate, ColumnDescription, ColumnNet, ColumnBalance}

var ErrUnknownColumn = errors.New("unknown column")

type (
	// DisplayRow is one formatted table row. Num points back at the stored
	// transaction so the full description can be looked up on demand.
	DisplayRow struct {
		Num   int64
		Cells []string
	}

	Table struct {
		Columns []Column
		Rows    []DisplayRow
	}
)

// ParseColumns turns a comma-separated list into columns, rejecting names
// that do not exist. An empty list selects DefaultColumns.
func ParseColumns(s string) ([]Column, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultColumns, nil
	}
	var cols []Column
	for _, part := range strings.Split(s, ",") {
		cols = append(cols, Column(strings.ToLower(strings.TrimSpace(part))))
	}
	if err := validate(cols); err != nil {
		return nil, err
	}
	return cols, nil
}

func validate(cols []Column) error {
	for _, c := range cols {
		known := false
		for _, k := range AllColumns {
			if c == k {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, string(c))
		}
	}
	return nil
}

// WordedDate renders d as "January 02 2006".
func WordedDate(d core.Date) string {
	return d.Format("January 02 2006")
}

// BuildTable projects rows (oldest first) onto the kept columns and returns
// them newest first. Only the kept columns are ever formatted.
func BuildTable(rows []core.Row, keep []Column) (Table, error) {
	if err := validate(keep); err != nil {
		return Table{}, err
	}
	t := Table{
		Columns: append([]Column(nil), keep...),
		Rows:    make([]DisplayRow, 0, len(rows)),
	}
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		cells := make([]string, len(keep))
		for j, c := range keep {
			cells[j] = cell(r, c)
		}
		t.Rows = append(t.Rows, DisplayRow{Num: r.Num, Cells: cells})
	}
	return t, nil
}

func cell(r core.Row, c Column) string {
	switch c {
	case ColumnNum:
		return strconv.FormatInt(r.Num, 10)
	case ColumnDate:
		return WordedDate(r.Date)
	case ColumnAdjustedDate:
		return r.Slot.Label()
	case ColumnDescription:
		return Summarize(r.Description)
	case ColumnCredit:
		return core.FormatAmount(r.Credit)
	case ColumnDebit:
		return core.FormatAmount(r.Debit)
	case ColumnNet:
		return core.FormatAmount(r.Net())
	case ColumnBalance:
		return core.FormatAmount(r.Balance)
	}
	return ""
}

// Headers returns the column labels upper-cased for display.
func (t Table) Headers() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = strings.ToUpper(string(c))
	}
	return out
}

// Records returns each row keyed by its display header.
func (t Table) Records() []map[string]string {
	headers := t.Headers()
	out := make([]map[string]string, len(t.Rows))
	for i, r := range t.Rows {
		rec := make(map[string]string, len(headers))
		for j, h := range headers {
			rec[h] = r.Cells[j]
		}
		out[i] = rec
	}
	return out
}
