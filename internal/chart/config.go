package chart

// Config mirrors the Chart.js configuration object for a bar chart.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Display `json:"options"`
}

type Data struct {
	Labels   []string     `json:"labels"`
	Datasets []BarDataset `json:"datasets"`
}

type BarDataset struct {
	Label           string     `json:"label"`
	Data            []Quantity `json:"data"`
	BackgroundColor []Fill     `json:"backgroundColor"`
	BorderColor     []RGBA     `json:"borderColor"`
	BorderWidth     int        `json:"borderWidth"`
	BorderRadius    int        `json:"borderRadius"`
	BorderSkipped   bool       `json:"borderSkipped"`
}

type Display struct {
	Responsive          bool      `json:"responsive"`
	MaintainAspectRatio bool      `json:"maintainAspectRatio"`
	AspectRatio         float64   `json:"aspectRatio"`
	Plugins             Plugins   `json:"plugins"`
	Scales              Scales    `json:"scales"`
	Animation           Animation `json:"animation"`
}

type Plugins struct {
	Legend  Toggle       `json:"legend"`
	Tooltip TooltipStyle `json:"tooltip"`
	Title   Toggle       `json:"title"`
}

type Toggle struct {
	Display bool `json:"display"`
}

type Font struct {
	Size   int    `json:"size"`
	Weight string `json:"weight,omitempty"`
}

// TooltipStyle carries only styling; the text comes from Chart.Tooltips.
type TooltipStyle struct {
	BackgroundColor RGBA `json:"backgroundColor"`
	Padding         int  `json:"padding"`
	TitleFont       Font `json:"titleFont"`
	BodyFont        Font `json:"bodyFont"`
	BorderColor     RGBA `json:"borderColor"`
	BorderWidth     int  `json:"borderWidth"`
	CornerRadius    int  `json:"cornerRadius"`
	DisplayColors   bool `json:"displayColors"`
}

type Scales struct {
	Y Axis `json:"y"`
	X Axis `json:"x"`
}

type Axis struct {
	BeginAtZero bool      `json:"beginAtZero,omitempty"`
	Grid        Grid      `json:"grid"`
	Ticks       Ticks     `json:"ticks"`
	Title       AxisTitle `json:"title"`
}

type Grid struct {
	Display    *bool `json:"display,omitempty"`
	Color      *RGBA `json:"color,omitempty"`
	DrawBorder *bool `json:"drawBorder,omitempty"`
}

type Ticks struct {
	Color   RGBA `json:"color"`
	Font    Font `json:"font"`
	Padding int  `json:"padding"`
}

type AxisTitle struct {
	Display bool    `json:"display"`
	Text    string  `json:"text"`
	Color   RGBA    `json:"color"`
	Font    Font    `json:"font"`
	Padding Padding `json:"padding"`
}

type Padding struct {
	Top    int `json:"top,omitempty"`
	Bottom int `json:"bottom,omitempty"`
}

type Animation struct {
	Duration int    `json:"duration"`
	Easing   string `json:"easing"`
}

var (
	tickColor  = RGBA{0, 0, 0, 0.6}
	titleColor = RGBA{0, 0, 0, 0.7}
	gridColor  = RGBA{0, 0, 0, 0.05}
)

func boolPtr(b bool) *bool { return &b }

func axisTicks() Ticks {
	return Ticks{Color: tickColor, Font: Font{Size: 12, Weight: "500"}, Padding: 10}
}

func buildConfig(opts Options, data Dataset, fills []Fill, borders []RGBA) Config {
	return Config{
		Type: "bar",
		Data: Data{
			Labels: data.Labels(),
			Datasets: []BarDataset{{
				Label:           opts.DatasetLabel,
				Data:            data.Quantities(),
				BackgroundColor: fills,
				BorderColor:     borders,
				BorderWidth:     2,
				BorderRadius:    8,
				BorderSkipped:   false,
			}},
		},
		Options: Display{
			Responsive:          true,
			MaintainAspectRatio: true,
			AspectRatio:         opts.AspectRatio,
			Plugins: Plugins{
				Legend: Toggle{Display: false},
				Tooltip: TooltipStyle{
					BackgroundColor: RGBA{0, 0, 0, 0.8},
					Padding:         12,
					TitleFont:       Font{Size: 14, Weight: "bold"},
					BodyFont:        Font{Size: 13},
					BorderColor:     RGBA{255, 255, 255, 0.1},
					BorderWidth:     1,
					CornerRadius:    8,
					DisplayColors:   true,
				},
				Title: Toggle{Display: false},
			},
			Scales: Scales{
				Y: Axis{
					BeginAtZero: true,
					Grid:        Grid{Color: &gridColor, DrawBorder: boolPtr(false)},
					Ticks:       axisTicks(),
					Title: AxisTitle{
						Display: true,
						Text:    opts.ValueTitle,
						Color:   titleColor,
						Font:    Font{Size: 14, Weight: "bold"},
						Padding: Padding{Bottom: 10},
					},
				},
				X: Axis{
					Grid:  Grid{Display: boolPtr(false)},
					Ticks: axisTicks(),
					Title: AxisTitle{
						Display: true,
						Text:    opts.CategoryTitle,
						Color:   titleColor,
						Font:    Font{Size: 14, Weight: "bold"},
						Padding: Padding{Top: 10},
					},
				},
			},
			Animation: Animation{Duration: opts.AnimationMS, Easing: opts.Easing},
		},
	}
}
