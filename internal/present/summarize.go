// Package present shapes ledger rows into a display table.
package present

import (
	"strings"
	"unicode"
)

var (
	redundantTokens     = []string{"NO", "ACH", "*", "-"}
	redundantSubstrings = []string{"CREDIT", "DEBIT", "CARD", "PURCHASE", "TRACE", "RECURRING", "PAYMENT", "NO:"}
)

// Summarize strips bank boilerplate from a description: tokens equal to a
// redundant token, containing a redundant substring, or containing a digit
// are dropped. Survivors are upper-cased and each followed by one space.
// The result is lossy; the original description stays on the transaction.
func Summarize(desc string) string {
	var b strings.Builder
	for _, tok := range strings.Fields(desc) {
		tok = strings.ToUpper(tok)
		if redundant(tok) {
			continue
		}
		b.WriteString(tok)
		b.WriteByte(' ')
	}
	return b.String()
}

func redundant(tok string) bool {
	for _, r := range redundantTokens {
		if tok == r {
			return true
		}
	}
	for _, s := range redundantSubstrings {
		if strings.Contains(tok, s) {
			return true
		}
	}
	return strings.IndexFunc(tok, unicode.IsDigit) >= 0
}
