// Package chart describes ledger charts as plotly-compatible figure JSON.
//
// Rendering is left to the browser; this package only decides which series
// go on which axis, the range selector buttons and the colours.
package chart

import (
	"errors"
	"fmt"

	"ledgerview/internal/aggregate"
	"ledgerview/internal/core"
)

const (
	Green      = "#00ff00"
	Red        = "#ff0000"
	BarGreen   = "#32CD32"
	BarRed     = "#FF0000"
	fontFamily = "Lucida Bright, monospace"
)

// Kind selects which bucket series a history chart plots.
type Kind string

const (
	Credit Kind = "credit"
	Debit  Kind = "debit"
	Net    Kind = "net"
)

var ErrUnknownKind = errors.New("unknown chart kind")

// ParseKind validates a chart kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Credit, Debit, Net:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

type (
	Figure struct {
		Data   []Trace `json:"data"`
		Layout Layout  `json:"layout"`
	}

	Trace struct {
		Type   string    `json:"type"`
		Mode   string    `json:"mode,omitempty"`
		X      []string  `json:"x"`
		Y      []float64 `json:"y"`
		Marker Marker    `json:"marker"`
	}

	Marker struct {
		Color []string `json:"color"`
	}

	Layout struct {
		Title     Title  `json:"title"`
		XAxis     XAxis  `json:"xaxis"`
		YAxis     YAxis  `json:"yaxis"`
		Margin    Margin `json:"margin"`
		Font      Font   `json:"font"`
		Height    int    `json:"height,omitempty"`
		HoverMode string `json:"hovermode,omitempty"`
	}

	Title struct {
		Text    string  `json:"text"`
		X       float64 `json:"x"`
		Y       float64 `json:"y"`
		XAnchor string  `json:"xanchor"`
		YAnchor string  `json:"yanchor"`
	}

	YAxis struct {
		Title AxisTitle `json:"title"`
	}

	AxisTitle struct {
		Text     string `json:"text"`
		Standoff int    `json:"standoff"`
	}

	Margin struct {
		L int `json:"l"`
		R int `json:"r"`
		T int `json:"t"`
		B int `json:"b"`
	}

	Font struct {
		Family string `json:"family,omitempty"`
		Size   int    `json:"size"`
	}
)

// BalanceFigure plots the running balance against each row's slot time.
// Markers are green after a credit and red otherwise.
func BalanceFigure(rows []core.Row) Figure {
	tr := Trace{
		Type:   "scatter",
		Mode:   "lines",
		X:      make([]string, len(rows)),
		Y:      make([]float64, len(rows)),
		Marker: Marker{Color: make([]string, len(rows))},
	}
	for i, r := range rows {
		tr.X[i] = r.Slot.Time().Format("2006-01-02 15:04")
		tr.Y[i] = r.Balance
		tr.Marker.Color[i] = Red
		if r.Net() > 0 {
			tr.Marker.Color[i] = Green
		}
	}
	return Figure{
		Data: []Trace{tr},
		Layout: Layout{
			Title:  centeredTitle("ACCOUNT BALANCE"),
			XAxis:  NewXAxis(BalanceSpans, false),
			YAxis:  dollars(),
			Margin: Margin{L: 20, R: 20, T: 20, B: 20},
			Font:   Font{Family: fontFamily, Size: 14},
		},
	}
}

// HistoryFigure plots one bucket series as bars. Credit bars are green,
// debit bars red, and net bars coloured by sign.
func HistoryFigure(buckets []aggregate.Bucket, kind Kind) (Figure, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return Figure{}, err
	}
	tr := Trace{
		Type:   "bar",
		X:      make([]string, len(buckets)),
		Y:      make([]float64, len(buckets)),
		Marker: Marker{Color: make([]string, len(buckets))},
	}
	for i, b := range buckets {
		tr.X[i] = b.Key
		switch kind {
		case Credit:
			tr.Y[i], tr.Marker.Color[i] = b.Credit, BarGreen
		case Debit:
			tr.Y[i], tr.Marker.Color[i] = b.Debit, BarRed
		case Net:
			tr.Y[i], tr.Marker.Color[i] = b.Net, BarGreen
			if b.Net < 0 {
				tr.Marker.Color[i] = BarRed
			}
		}
	}
	return Figure{
		Data: []Trace{tr},
		Layout: Layout{
			Title:     centeredTitle(fmt.Sprintf("%s HISTORY", upper(kind))),
			XAxis:     NewXAxis(HistorySpans, false),
			YAxis:     dollars(),
			Margin:    Margin{L: 20, R: 20, T: 20, B: 20},
			Font:      Font{Family: fontFamily, Size: 13},
			Height:    700,
			HoverMode: "x",
		},
	}, nil
}

func upper(k Kind) string {
	switch k {
	case Credit:
		return "CREDIT"
	case Debit:
		return "DEBIT"
	}
	return "NET"
}

func centeredTitle(text string) Title {
	return Title{Text: text, X: 0.5, Y: 1, XAnchor: "center", YAnchor: "top"}
}

func dollars() YAxis {
	return YAxis{Title: AxisTitle{Text: "Dollars", Standoff: 10}}
}
