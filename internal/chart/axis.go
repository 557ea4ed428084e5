package chart

// Span is one range selector button before its step mode is resolved.
type Span struct {
	Count int
	Label string
	Unit  string
}

// Default spans used by the balance and history charts.
var (
	BalanceSpans = []Span{
		{1, "Day", "day"},
		{7, "Week", "day"},
		{1, "Month", "month"},
		{6, "6 Months", "month"},
		{1, "YTD", "year"},
		{1, "Year", "year"},
	}
	HistorySpans = []Span{
		{6, "6 Months", "month"},
		{1, "Year", "year"},
		{5, "5 Years", "year"},
	}
)

type (
	RangeButton struct {
		Count    int    `json:"count,omitempty"`
		Label    string `json:"label,omitempty"`
		Step     string `json:"step"`
		StepMode string `json:"stepmode,omitempty"`
	}

	RangeSelector struct {
		Buttons []RangeButton `json:"buttons"`
		Font    Font          `json:"font"`
	}

	RangeSlider struct {
		Visible   bool    `json:"visible"`
		Thickness float64 `json:"thickness"`
	}

	XAxis struct {
		RangeSelector RangeSelector `json:"rangeselector"`
		RangeSlider   RangeSlider   `json:"rangeslider"`
		Type          string        `json:"type"`
	}
)

// Buttons turns spans into range selector buttons. Spans count backward from
// the latest point except "YTD", which anchors to the start of the year. An
// "all" button is always appended.
func Buttons(spans []Span) []RangeButton {
	out := make([]RangeButton, 0, len(spans)+1)
	for _, s := range spans {
		mode := "backward"
		if s.Label == "YTD" {
			mode = "todate"
		}
		out = append(out, RangeButton{Count: s.Count, Label: s.Label, Step: s.Unit, StepMode: mode})
	}
	return append(out, RangeButton{Step: "all"})
}

// NewXAxis builds a date x-axis with a range selector and optional slider.
func NewXAxis(spans []Span, slider bool) XAxis {
	return XAxis{
		RangeSelector: RangeSelector{Buttons: Buttons(spans), Font: Font{Size: 14}},
		RangeSlider:   RangeSlider{Visible: slider, Thickness: 0.1},
		Type:          "date",
	}
}
