package sheets

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"ledgerview/internal/core"
)

// parseTransactions converts a values matrix (as returned by the Sheets API)
// into transactions ordered by num. Rows without a num are numbered by
// their position in the sheet. Fully blank rows are skipped.
func parseTransactions(values [][]interface{}) ([]core.Transaction, error) {
	out := make([]core.Transaction, 0)
	if len(values) == 0 {
		return out, nil
	}
	headers := toStrings(values[0])
	colNum := indexOf(headers, "num")
	colDate := indexOf(headers, "date")
	colDesc := indexOf(headers, "description")
	colCredit := indexOf(headers, "credit")
	colDebit := indexOf(headers, "debit")
	if colDate == -1 {
		return nil, fmt.Errorf("unexpected header: missing date; got headers=%v", headers)
	}

	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		if blank(row) {
			continue
		}
		tx := core.Transaction{Num: int64(i), Description: safeGet(row, colDesc)}
		if raw := strings.TrimSpace(safeGet(row, colNum)); raw != "" {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid num %q", i+1, raw)
			}
			tx.Num = n
		}
		d, err := core.ParseDate(safeGet(row, colDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		tx.Date = d
		if tx.Credit, err = core.ParseAmount(safeGet(row, colCredit)); err != nil {
			return nil, fmt.Errorf("row %d credit: %w", i+1, err)
		}
		if tx.Debit, err = core.ParseAmount(safeGet(row, colDebit)); err != nil {
			return nil, fmt.Errorf("row %d debit: %w", i+1, err)
		}
		out = append(out, tx)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Num < out[j].Num })
	return out, nil
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch x := v.(type) {
		case string:
			out[i] = x
		case float64:
			// UNFORMATTED_VALUE returns numbers as float64
			out[i] = strconv.FormatFloat(x, 'f', -1, 64)
		case nil:
			out[i] = ""
		default:
			out[i] = fmt.Sprint(x)
		}
	}
	return out
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func safeGet(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
