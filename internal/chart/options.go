package chart

// Options holds the display strings and tunables of the renderer.
type Options struct {
	TargetID       string  `yaml:"target_id"`
	DatasetLabel   string  `yaml:"dataset_label"`
	ValueTitle     string  `yaml:"value_title"`
	CategoryTitle  string  `yaml:"category_title"`
	Placeholder    string  `yaml:"placeholder"`
	GradientHeight float64 `yaml:"gradient_height"`
	AnimationMS    int     `yaml:"animation_ms"`
	Easing         string  `yaml:"easing"`
	AspectRatio    float64 `yaml:"aspect_ratio"`
}

// DefaultTargetID is the id of the canvas the chart is drawn into.
const DefaultTargetID = "graficaEstadoAdmin"

// DefaultOptions returns the stock dashboard strings and styling.
func DefaultOptions() Options {
	return Options{
		TargetID:       DefaultTargetID,
		DatasetLabel:   "Cantidad de Pruebas",
		ValueTitle:     "Cantidad de Pruebas",
		CategoryTitle:  "Categorías de Pruebas",
		Placeholder:    "No hay datos disponibles para mostrar",
		GradientHeight: 400,
		AnimationMS:    1500,
		Easing:         "easeInOutQuart",
		AspectRatio:    2,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TargetID == "" {
		o.TargetID = d.TargetID
	}
	if o.DatasetLabel == "" {
		o.DatasetLabel = d.DatasetLabel
	}
	if o.ValueTitle == "" {
		o.ValueTitle = d.ValueTitle
	}
	if o.CategoryTitle == "" {
		o.CategoryTitle = d.CategoryTitle
	}
	if o.Placeholder == "" {
		o.Placeholder = d.Placeholder
	}
	if o.GradientHeight == 0 {
		o.GradientHeight = d.GradientHeight
	}
	if o.AnimationMS == 0 {
		o.AnimationMS = d.AnimationMS
	}
	if o.Easing == "" {
		o.Easing = d.Easing
	}
	if o.AspectRatio == 0 {
		o.AspectRatio = d.AspectRatio
	}
	return o
}
