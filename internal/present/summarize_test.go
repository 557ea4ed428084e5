package present

import "testing"

func TestSummarize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"DEBIT CARD PURCHASE 123 STARBUCKS", "STARBUCKS "},
		{"ach credit payroll acme corp", "PAYROLL ACME CORP "},
		{"Recurring Payment NO: 4455 * NETFLIX.COM", "NETFLIX.COM "},
		{"TRACE#0001 - WHOLE   FOODS", "WHOLE FOODS "},
		{"no NOTE", "NOTE "},
		{"", ""},
		{"12345", ""},
	}
	for _, tc := range cases {
		if got := Summarize(tc.in); got != tc.want {
			t.Fatalf("Summarize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	inputs := []string{
		"DEBIT CARD PURCHASE 123 STARBUCKS",
		"Zelle payment to Jane Doe 8812",
		"ONLINE TRANSFER FROM SAVINGS XXXXXX1234",
		"ach - check deposit",
	}
	for _, in := range inputs {
		once := Summarize(in)
		if twice := Summarize(once); twice != once {
			t.Fatalf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
