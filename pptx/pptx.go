// Package pptx renders a deck to a PowerPoint file.
package pptx

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"deckgen.dev/deck"
	"deckgen.dev/deck/chart"
)

const (
	emuPerInch  = 914400
	emuPerPixel = 9525 // 96 dpi

	slideWidth  = int64(10.0 * emuPerInch)
	slideHeight = int64(5.625 * emuPerInch)

	marginLeft   = int64(0.4 * emuPerInch)
	contentWidth = int64(9.2 * emuPerInch)

	listIndent = int64(0.4 * emuPerInch)

	fontTitle    = 36
	fontSubtitle = 20
	fontHeading  = 28
	fontBody     = 14
)

// SampleSource supplies the numeric series for plot slides.
type SampleSource func() (deck.Series, error)

// Render produces the pptx bytes for a deck, one slide per entry in
// order. Any failure aborts the whole render.
func Render(d *deck.Deck, samples SampleSource) ([]byte, error) {
	// A new GoPPT presentation starts with one slide already on it, so
	// rendering zero descriptors would still produce a one-slide file.
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("deck has no slides")
	}

	b := &builder{pres: ppt.New(), samples: samples}
	b.pres.GetDocumentProperties().Creator = "deckgen.dev/deck"

	for i, s := range d.Slides {
		if err := b.add(s); err != nil {
			return nil, fmt.Errorf("slide %d (%s): %w", i+1, s.Type, err)
		}
	}

	w, err := ppt.NewWriter(b.pres, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("creating pptx writer: %w", err)
	}
	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing pptx: %w", err)
	}
	return buf.Bytes(), nil
}

type builder struct {
	pres    *ppt.Presentation
	samples SampleSource
	used    bool // the first slide comes pre-created on the presentation
}

func (b *builder) slide() *ppt.Slide {
	if !b.used {
		b.used = true
		return b.pres.GetActiveSlide()
	}
	return b.pres.CreateSlide()
}

func (b *builder) add(s deck.Slide) error {
	switch s.Type {
	case deck.TypeTitle:
		b.addTitle(s.Title, s.Text)
	case deck.TypeText:
		b.addText(s.Title, s.Text)
	case deck.TypeList:
		b.addList(s.Title, s.Items)
	case deck.TypePicture:
		return b.addPictureFile(s.Title, s.ImagePath)
	case deck.TypePlot:
		return b.addPlot(s.Title, s.Plot)
	default:
		return fmt.Errorf("unknown slide type %q", s.Type)
	}
	return nil
}

func (b *builder) addTitle(title, subtitle string) {
	slide := b.slide()

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(1.6 * emuPerInch))
	titleShape.SetWidth(contentWidth).SetHeight(int64(1.0 * emuPerInch))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(fontTitle).SetBold(true)
	alignCenter(titleShape.GetActiveParagraph())

	subShape := slide.CreateRichTextShape()
	subShape.SetOffsetX(marginLeft).SetOffsetY(int64(2.9 * emuPerInch))
	subShape.SetWidth(contentWidth).SetHeight(int64(0.6 * emuPerInch))
	str := subShape.CreateTextRun(subtitle)
	str.GetFont().SetSize(fontSubtitle)
	alignCenter(subShape.GetActiveParagraph())
}

func (b *builder) addText(title, text string) {
	slide := b.slide()
	b.header(slide, title)

	body := b.body(slide)
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			body.CreateParagraph()
		}
		tr := body.CreateTextRun(line)
		tr.GetFont().SetSize(fontBody)
	}
}

func (b *builder) addList(title string, items []deck.ListItem) {
	slide := b.slide()
	b.header(slide, title)

	body := b.body(slide)
	for i, item := range items {
		if i > 0 {
			body.CreateParagraph()
		}
		tr := body.CreateTextRun("• " + item.Text)
		tr.GetFont().SetSize(fontBody)

		align := ppt.NewAlignment()
		align.MarginLeft = int64(item.Level) * listIndent
		body.GetActiveParagraph().SetAlignment(align)
	}
}

func (b *builder) addPictureFile(title, path string) error {
	bs, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return b.addPicture(title, bs)
}

func (b *builder) addPicture(title string, img []byte) error {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return fmt.Errorf("reading image header: %w", err)
	}

	w := int64(cfg.Width) * emuPerPixel
	h := int64(cfg.Height) * emuPerPixel
	left, top := centered(slideWidth, slideHeight, w, h)

	slide := b.slide()
	b.header(slide, title)

	shape := slide.CreateDrawingShape()
	shape.SetImageData(img, "image/"+format)
	shape.SetOffsetX(left).SetOffsetY(top)
	shape.SetWidth(w).SetHeight(h)
	return nil
}

func (b *builder) addPlot(title string, cfg *deck.PlotConfig) error {
	if cfg == nil {
		return fmt.Errorf("no plot configuration")
	}
	if b.samples == nil {
		return fmt.Errorf("no sample source configured")
	}
	series, err := b.samples()
	if err != nil {
		return fmt.Errorf("loading samples: %w", err)
	}
	img, err := chart.Line(series, cfg.XLabel, cfg.YLabel)
	if err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return b.addPicture(title, img)
}

func (b *builder) header(slide *ppt.Slide, title string) {
	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(0.3 * emuPerInch))
	titleShape.SetWidth(contentWidth).SetHeight(int64(0.6 * emuPerInch))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(fontHeading).SetBold(true)
}

func (b *builder) body(slide *ppt.Slide) *ppt.RichTextShape {
	body := slide.CreateRichTextShape()
	body.SetOffsetX(marginLeft).SetOffsetY(int64(1.1 * emuPerInch))
	body.SetWidth(contentWidth).SetHeight(int64(4.2 * emuPerInch))
	return body
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// centered returns the top-left offset placing an image at the middle of
// the slide, in EMU. Division floors, also for oversized images.
func centered(slideW, slideH, imgW, imgH int64) (left, top int64) {
	return floorDiv(slideW-imgW, 2), floorDiv(slideH-imgH, 2)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
