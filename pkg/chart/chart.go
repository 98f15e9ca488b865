// Package chart builds the chart part of an xlsx package: the XML document
// describing one chart object, its data series, and its axis pair. A Chart is
// filled with series by a document-assembly layer that supplies cell-range
// references, then assembled once or more into a caller-provided stream.
package chart

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// Series describes one value set within a chart. Callers fill in a template
// and hand it to Chart.AddSeries, which stores an independent copy; the
// template stays owned by the caller and may be reused or changed afterwards.
type Series struct {
	// ValueRange is the formula reference locating the series values,
	// e.g. "Sheet1!$A$1:$A$5". Required; it is emitted verbatim.
	ValueRange string
	// SheetName is the worksheet the values originate from. Optional;
	// preserved for cross-referencing but not emitted by the current
	// part schema.
	SheetName string
}

// Chart is the mutable model of a single chart part: an ordered, exclusively
// owned series list and a lazily allocated axis identifier pair.
//
// A Chart is not safe for concurrent use. Callers must serialize AddSeries
// and AssembleXML on the same instance.
type Chart struct {
	id   uint32
	kind Type

	// series holds deep copies of caller templates in insertion order,
	// which is also emission order.
	series []*Series

	// axisID1 and axisID2 are zero until the first assembly references
	// them, then hold the derived identifier for the chart's lifetime.
	axisID1 uint32
	axisID2 uint32
}

// New returns an empty clustered bar chart. chartID must be unique within the
// workbook the part will be embedded in; the axis identifiers derive from it.
func New(chartID uint32) *Chart {
	return &Chart{
		id:   chartID,
		kind: TypeBarClustered,
	}
}

// AddSeries appends a copy of the template to the chart's series list. The
// template is rejected before any mutation if it is nil (ErrNilSeries) or has
// no value range (ErrNoValueRange). No index is assigned here; series take
// their positions at assembly time.
func (c *Chart) AddSeries(template *Series) error {
	if template == nil {
		return ErrNilSeries
	}
	if template.ValueRange == "" {
		return ErrNoValueRange
	}

	owned := new(Series)
	if err := deepcopy.Copy(owned, template); err != nil {
		return fmt.Errorf("copy series template: %w", err)
	}
	c.series = append(c.series, owned)
	return nil
}

// SeriesCount reports how many series the chart holds.
func (c *Chart) SeriesCount() int {
	return len(c.series)
}

// Kind reports the chart kind an assembly pass will emit.
func (c *Chart) Kind() Type {
	return c.kind
}
