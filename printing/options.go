// Package printing models page-print settings sent to a remote automation
// server. Options is a validating builder over the wire mapping: nothing
// appears in the serialized form until its setter has been called, and
// the page and margin sub-mappings materialize only once one of their
// fields is set.
package printing

import (
	"errors"
	"fmt"
)

// ErrInvalidOption indicates a print option value that failed validation.
var ErrInvalidOption = errors.New("printing: invalid option value")

// Orientation selects the page orientation.
type Orientation string

const (
	// Portrait is the default browser print orientation.
	Portrait Orientation = "portrait"

	// Landscape rotates the page a quarter turn.
	Landscape Orientation = "landscape"
)

// Scale bounds accepted by SetScale.
const (
	minScale = 0.1
	maxScale = 2.0
)

// Wire names of the print option fields.
const (
	keyPage        = "page"
	keyMargin      = "margin"
	keyScale       = "scale"
	keyOrientation = "orientation"
	keyBackground  = "background"
	keyShrinkToFit = "shrinkToFit"
	keyPageRanges  = "pageRanges"
)

// Options accumulates validated print settings. The zero value is usable
// and serializes to an empty mapping.
type Options struct {
	opts   map[string]any
	page   map[string]any
	margin map[string]any
}

// New returns an empty Options.
func New() *Options {
	return &Options{}
}

// Map returns the wire mapping of every option set so far. Sub-mappings
// are shared with the Options, not copied.
func (o *Options) Map() map[string]any {
	if o.opts == nil {
		return map[string]any{}
	}
	return o.opts
}

// set records a top-level option, materializing the mapping on first use.
func (o *Options) set(key string, value any) {
	if o.opts == nil {
		o.opts = make(map[string]any)
	}
	o.opts[key] = value
}

// setPage records a page dimension, materializing the sub-mapping on
// first use.
func (o *Options) setPage(name string, value float64) {
	if o.page == nil {
		o.page = make(map[string]any)
	}
	o.page[name] = value
	o.set(keyPage, o.page)
}

// setMargin records a margin, materializing the sub-mapping on first use.
func (o *Options) setMargin(name string, value float64) {
	if o.margin == nil {
		o.margin = make(map[string]any)
	}
	o.margin[name] = value
	o.set(keyMargin, o.margin)
}

// validateNonNegative rejects negative dimensions and margins.
func validateNonNegative(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%w: %s cannot be less than 0, got %v", ErrInvalidOption, name, value)
	}
	return nil
}

// PageWidth returns the page width in centimeters, if set.
func (o *Options) PageWidth() (float64, bool) { return o.pageValue("width") }

// SetPageWidth sets the page width in centimeters.
func (o *Options) SetPageWidth(v float64) error {
	if err := validateNonNegative("page width", v); err != nil {
		return err
	}
	o.setPage("width", v)
	return nil
}

// PageHeight returns the page height in centimeters, if set.
func (o *Options) PageHeight() (float64, bool) { return o.pageValue("height") }

// SetPageHeight sets the page height in centimeters.
func (o *Options) SetPageHeight(v float64) error {
	if err := validateNonNegative("page height", v); err != nil {
		return err
	}
	o.setPage("height", v)
	return nil
}

// MarginTop returns the top margin in centimeters, if set.
func (o *Options) MarginTop() (float64, bool) { return o.marginValue("top") }

// SetMarginTop sets the top margin in centimeters.
func (o *Options) SetMarginTop(v float64) error {
	if err := validateNonNegative("margin top", v); err != nil {
		return err
	}
	o.setMargin("top", v)
	return nil
}

// MarginBottom returns the bottom margin in centimeters, if set.
func (o *Options) MarginBottom() (float64, bool) { return o.marginValue("bottom") }

// SetMarginBottom sets the bottom margin in centimeters.
func (o *Options) SetMarginBottom(v float64) error {
	if err := validateNonNegative("margin bottom", v); err != nil {
		return err
	}
	o.setMargin("bottom", v)
	return nil
}

// MarginLeft returns the left margin in centimeters, if set.
func (o *Options) MarginLeft() (float64, bool) { return o.marginValue("left") }

// SetMarginLeft sets the left margin in centimeters.
func (o *Options) SetMarginLeft(v float64) error {
	if err := validateNonNegative("margin left", v); err != nil {
		return err
	}
	o.setMargin("left", v)
	return nil
}

// MarginRight returns the right margin in centimeters, if set.
func (o *Options) MarginRight() (float64, bool) { return o.marginValue("right") }

// SetMarginRight sets the right margin in centimeters.
func (o *Options) SetMarginRight(v float64) error {
	if err := validateNonNegative("margin right", v); err != nil {
		return err
	}
	o.setMargin("right", v)
	return nil
}

// Scale returns the print scale, if set.
func (o *Options) Scale() (float64, bool) {
	v, ok := o.optValue(keyScale)
	if !ok {
		return 0, false
	}
	return v.(float64), true
}

// SetScale sets the print scale. Values outside [0.1, 2] are rejected.
func (o *Options) SetScale(v float64) error {
	if v < minScale || v > maxScale {
		return fmt.Errorf("%w: scale must be between %v and %v, got %v", ErrInvalidOption, minScale, maxScale, v)
	}
	o.set(keyScale, v)
	return nil
}

// Orientation returns the page orientation, if set.
func (o *Options) Orientation() (Orientation, bool) {
	v, ok := o.optValue(keyOrientation)
	if !ok {
		return "", false
	}
	return Orientation(v.(string)), true
}

// SetOrientation sets the page orientation to portrait or landscape.
func (o *Options) SetOrientation(v Orientation) error {
	if v != Portrait && v != Landscape {
		return fmt.Errorf("%w: orientation must be %q or %q, got %q", ErrInvalidOption, Portrait, Landscape, v)
	}
	o.set(keyOrientation, string(v))
	return nil
}

// Background returns whether background graphics print, if set.
func (o *Options) Background() (bool, bool) {
	v, ok := o.optValue(keyBackground)
	if !ok {
		return false, false
	}
	return v.(bool), true
}

// SetBackground sets whether background graphics print.
func (o *Options) SetBackground(v bool) {
	o.set(keyBackground, v)
}

// ShrinkToFit returns whether content shrinks to the page width, if set.
func (o *Options) ShrinkToFit() (bool, bool) {
	v, ok := o.optValue(keyShrinkToFit)
	if !ok {
		return false, false
	}
	return v.(bool), true
}

// SetShrinkToFit sets whether content shrinks to the page width.
func (o *Options) SetShrinkToFit(v bool) {
	o.set(keyShrinkToFit, v)
}

// PageRanges returns the page ranges to print, if set.
func (o *Options) PageRanges() ([]string, bool) {
	v, ok := o.optValue(keyPageRanges)
	if !ok {
		return nil, false
	}
	return v.([]string), true
}

// SetPageRanges sets the page ranges to print, e.g. "2-4".
func (o *Options) SetPageRanges(ranges []string) {
	o.set(keyPageRanges, ranges)
}

func (o *Options) optValue(key string) (any, bool) {
	if o.opts == nil {
		return nil, false
	}
	v, ok := o.opts[key]
	return v, ok
}

func (o *Options) pageValue(name string) (float64, bool) {
	if o.page == nil {
		return 0, false
	}
	v, ok := o.page[name]
	if !ok {
		return 0, false
	}
	return v.(float64), true
}

func (o *Options) marginValue(name string) (float64, bool) {
	if o.margin == nil {
		return 0, false
	}
	v, ok := o.margin[name]
	if !ok {
		return 0, false
	}
	return v.(float64), true
}
