package deck

import (
	"encoding/json"
	"fmt"
	"io"

	"dario.cat/mergo"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var defaultPlotConfig = PlotConfig{XLabel: "x", YLabel: "y"}

type rawSlide struct {
	Type          string          `json:"type"`
	Title         string          `json:"title"`
	Content       json.RawMessage `json:"content"`
	Configuration *PlotConfig     `json:"configuration"`
}

type rawConfig struct {
	Presentation *[]rawSlide `json:"presentation"`
}

// Parse reads a JSON slide configuration into a Deck. Content shape is
// checked per slide type here, so rendering only sees well-formed slides.
func Parse(r io.Reader) (*Deck, error) {
	// Configurations written on Windows often start with a UTF-8 BOM,
	// which encoding/json rejects.
	r = transform.NewReader(r, unicode.UTF8BOM.NewDecoder())

	var cfg rawConfig
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	if cfg.Presentation == nil {
		return nil, fmt.Errorf(`configuration has no "presentation" key`)
	}

	var d Deck
	for i, raw := range *cfg.Presentation {
		slide, err := raw.slide()
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		d.Slides = append(d.Slides, slide)
	}
	return &d, nil
}

func (raw rawSlide) slide() (Slide, error) {
	s := Slide{Type: SlideType(raw.Type), Title: raw.Title}

	switch s.Type {
	case TypeTitle, TypeText:
		text, err := contentString(raw.Content)
		if err != nil {
			return Slide{}, err
		}
		s.Text = text

	case TypeList:
		var items []struct {
			Level *int    `json:"level"`
			Text  *string `json:"text"`
		}
		if raw.Content == nil {
			return Slide{}, fmt.Errorf("missing content")
		}
		if err := json.Unmarshal(raw.Content, &items); err != nil {
			return Slide{}, fmt.Errorf("content must be a list of {level, text} items")
		}
		for j, item := range items {
			if item.Level == nil || item.Text == nil {
				return Slide{}, fmt.Errorf("list item %d: level and text are required", j+1)
			}
			s.Items = append(s.Items, ListItem{Level: *item.Level, Text: *item.Text})
		}

	case TypePicture:
		path, err := contentString(raw.Content)
		if err != nil {
			return Slide{}, err
		}
		if path == "" {
			return Slide{}, fmt.Errorf("empty image path")
		}
		s.ImagePath = path

	case TypePlot:
		cfg := PlotConfig{}
		if raw.Configuration != nil {
			cfg = *raw.Configuration
		}
		_ = mergo.Merge(&cfg, defaultPlotConfig)
		s.Plot = &cfg

	default:
		return Slide{}, fmt.Errorf("unknown slide type %q", raw.Type)
	}

	return s, nil
}

func contentString(c json.RawMessage) (string, error) {
	if c == nil {
		return "", fmt.Errorf("missing content")
	}
	var s string
	if err := json.Unmarshal(c, &s); err != nil {
		return "", fmt.Errorf("content must be a string")
	}
	return s, nil
}
