package textlayout

import (
	"fmt"

	"github.com/gogpu/textlayout/controller"
	"github.com/gogpu/textlayout/layout"
	"github.com/gogpu/textlayout/text"
)

// LayoutString shapes s with the face and lays it out in a multi-line box.
// It returns the laid-out model and the size of the text.
func LayoutString(s string, face text.Face, box layout.Size, opts ...controller.Option) (*layout.Model, layout.Size, error) {
	registry := text.NewRegistry()
	font, err := registry.Register(face)
	if err != nil {
		return nil, layout.Size{}, fmt.Errorf("textlayout: %w", err)
	}

	c := controller.New(text.NewBuilder(registry), layout.NewEngine(registry, layout.WithLayout(layout.MultiLineBox)), font, opts...)
	c.SetText(s)
	size, err := c.Relayout(box)
	if err != nil {
		return nil, layout.Size{}, fmt.Errorf("textlayout: %w", err)
	}
	return c.Model(), size, nil
}
