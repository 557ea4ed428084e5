package http

import (
	"net/http"

	"ledgerview/internal/aggregate"
	"ledgerview/internal/chart"
	"ledgerview/internal/core"
	"ledgerview/internal/log"
	"ledgerview/internal/present"
)

type (
	balancePoint struct {
		Num     int64   `json:"num"`
		Date    string  `json:"date"`
		Slot    string  `json:"slot"`
		Net     float64 `json:"net"`
		Balance float64 `json:"balance"`
	}

	balanceResponse struct {
		Anchor  float64        `json:"current_balance"`
		Start   float64        `json:"starting_balance"`
		Entries []balancePoint `json:"entries"`
	}

	bucketEntry struct {
		Key    string  `json:"key"`
		Start  string  `json:"start"`
		Credit float64 `json:"credit"`
		Debit  float64 `json:"debit"`
		Net    float64 `json:"net"`
	}

	tableResponse struct {
		Headers []string            `json:"headers"`
		Rows    []map[string]string `json:"rows"`
	}
)

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	rep, err := s.report(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	tbl, err := present.BuildTable(rep.Rows, present.DefaultColumns)
	if err != nil {
		writeError(w, r, err)
		return
	}

	data := struct {
		Current  string
		Starting string
		Headers  []string
		Rows     []present.DisplayRow
	}{
		Current:  core.FormatAmount(rep.Anchor),
		Starting: core.FormatAmount(rep.Start),
		Headers:  tbl.Headers(),
		Rows:     tbl.Rows,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Index template execution failed", log.FieldError, err)
	}
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	rep, err := s.report(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp := balanceResponse{
		Anchor:  rep.Anchor,
		Start:   rep.Start,
		Entries: make([]balancePoint, len(rep.Rows)),
	}
	for i, row := range rep.Rows {
		resp.Entries[i] = balancePoint{
			Num:     row.Num,
			Date:    row.Date.String(),
			Slot:    row.Slot.Label(),
			Net:     core.RoundCurrency(row.Net()),
			Balance: row.Balance,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	p, err := parsePrecision(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rep, err := s.report(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bucketEntries(rep.Buckets(p)))
}

func bucketEntries(buckets []aggregate.Bucket) []bucketEntry {
	out := make([]bucketEntry, len(buckets))
	for i, b := range buckets {
		out[i] = bucketEntry{
			Key:    b.Key,
			Start:  b.Start.String(),
			Credit: b.Credit,
			Debit:  b.Debit,
			Net:    b.Net,
		}
	}
	return out
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	cols, err := parseColumns(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rep, err := s.report(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	tbl, err := present.BuildTable(rep.Rows, cols)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tableResponse{Headers: tbl.Headers(), Rows: tbl.Records()})
}

func (s *Server) handleBalanceChart(w http.ResponseWriter, r *http.Request) {
	rep, err := s.report(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, chart.BalanceFigure(rep.Rows))
}

func (s *Server) handleHistoryChart(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rep, err := s.report(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	fig, err := chart.HistoryFigure(rep.Monthly, kind)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fig)
}
