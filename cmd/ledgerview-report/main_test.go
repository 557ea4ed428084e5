package main

import (
	"bytes"
	"strings"
	"testing"

	"ledgerview/internal/core"
	"ledgerview/internal/present"
	"ledgerview/internal/report"
)

func TestRender(t *testing.T) {
	rep := report.Derive([]core.Transaction{
		{Num: 1, Date: core.NewDate(2024, 1, 1), Description: "ACH CREDIT PAYROLL 0042", Credit: 100},
		{Num: 2, Date: core.NewDate(2024, 2, 1), Description: "DEBIT CARD PURCHASE STARBUCKS", Debit: 50},
	}, 50)
	tbl, err := present.BuildTable(rep.Rows, present.DefaultColumns)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := render(&buf, rep, tbl, rep.Monthly); err != nil {
		t.Fatalf("render() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Current balance:  50.00",
		"Starting balance: 0.00",
		"DATE",
		"February 01 2024",
		"STARBUCKS",
		"2024-01",
		"100.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "February 01 2024") > strings.Index(out, "January 01 2024") {
		t.Errorf("table not newest first:\n%s", out)
	}
}
