package widget

// Layout holds presentation settings that do not affect the numbers.
type Layout struct {
	Title       string `yaml:"title" json:"title"`
	Currency    string `yaml:"currency" json:"currency"`
	ChartWidth  int    `yaml:"chart_width" json:"chart_width"`
	ChartHeight int    `yaml:"chart_height" json:"chart_height"`
}

func DefaultLayout() Layout {
	return Layout{
		Title:       "Loan Calculator",
		Currency:    "$",
		ChartWidth:  400,
		ChartHeight: 200,
	}
}

// WithDefaults fills unset fields from DefaultLayout.
func (l Layout) WithDefaults() Layout {
	d := DefaultLayout()
	if l.Title == "" {
		l.Title = d.Title
	}
	if l.Currency == "" {
		l.Currency = d.Currency
	}
	if l.ChartWidth <= 0 {
		l.ChartWidth = d.ChartWidth
	}
	if l.ChartHeight <= 0 {
		l.ChartHeight = d.ChartHeight
	}
	return l
}
