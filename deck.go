package deck // import "deckgen.dev/deck"

type SlideType string

const (
	TypeTitle   SlideType = "title"
	TypeText    SlideType = "text"
	TypeList    SlideType = "list"
	TypePicture SlideType = "picture"
	TypePlot    SlideType = "plot"
)

type Deck struct {
	Slides []Slide
}

// Slide is one entry of the presentation. Exactly one of the content
// fields is set, according to Type.
type Slide struct {
	Type  SlideType
	Title string

	Text      string      // title, text
	Items     []ListItem  // list
	ImagePath string      // picture
	Plot      *PlotConfig // plot
}

type ListItem struct {
	Level int
	Text  string
}

type PlotConfig struct {
	XLabel string `json:"x-label"`
	YLabel string `json:"y-label"`
}

// Series holds the sample columns for a plot slide, in file order.
type Series struct {
	X []float64
	Y []float64
}
