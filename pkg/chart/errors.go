package chart

import "errors"

// ErrNilSeries indicates AddSeries was called with a nil template.
var ErrNilSeries = errors.New("series template is nil")

// ErrNoValueRange indicates a series template without the required value range.
var ErrNoValueRange = errors.New("series value range is empty")

// ErrUnsupportedType indicates a chart kind the assembler cannot emit.
var ErrUnsupportedType = errors.New("unsupported chart type")
