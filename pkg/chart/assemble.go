package chart

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rifat17/libxlsxwriter/pkg/xmlwriter"
)

// Drawing markup namespaces declared on the chartSpace root.
const (
	nsChart         = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	nsDrawingMain   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// axisIDBase is the offset axis identifiers are derived from. Adding the
// workbook-unique chart id keeps parts embedded in one package from
// colliding.
const axisIDBase = 50010000

// Schema-fixed attribute values for the supported chart kind. Consuming
// applications expect these byte for byte; none are configurable.
const (
	valLang          = "en-US"
	valBarDir        = "bar"
	valGrouping      = "clustered"
	valOrientation   = "minMax"
	valAxisPosLeft   = "l"
	valAxisPosBottom = "b"
	valTickLabelPos  = "nextTo"
	valCrosses       = "autoZero"
	valAuto          = "1"
	valLabelAlign    = "ctr"
	valLabelOffset   = "100"
	valNumberFormat  = "General"
	valSourceLinked  = "1"
	valCrossBetween  = "between"
	valLegendPos     = "r"
	valPlotVisOnly   = "1"
	valMarginBottom  = "0.75"
	valMarginLeft    = "0.7"
	valMarginRight   = "0.7"
	valMarginTop     = "0.75"
	valMarginHeader  = "0.3"
	valMarginFooter  = "0.3"
)

// AssembleXML writes the complete chart part document for the chart to w.
// It may be called repeatedly and produces identical bytes each time: series
// indices are positional and the axis identifier pair, allocated on the first
// call, never changes afterwards. The traversal itself cannot fail; the
// returned error is the first one the output stream reported, or
// ErrUnsupportedType for a kind the dispatcher does not know.
func (c *Chart) AssembleXML(w io.Writer) error {
	c.ensureAxisIDs()

	xw := xmlwriter.New(w)
	xw.Declaration()
	c.writeChartSpace(xw)
	c.writeLang(xw)
	if err := c.writeChart(xw); err != nil {
		return err
	}
	c.writePrintSettings(xw)
	xw.EndTag("c:chartSpace")
	return xw.Close()
}

// ensureAxisIDs allocates the axis identifier pair on first use. Both slots
// share one value: a single primary axis pair needs no distinct second id.
func (c *Chart) ensureAxisIDs() {
	if c.axisID1 != 0 {
		return
	}
	id := axisIDBase + c.id + 1
	c.axisID1 = id
	c.axisID2 = id
}

// writeChartSpace writes the <c:chartSpace> root element.
func (c *Chart) writeChartSpace(xw *xmlwriter.Writer) {
	xw.StartTag("c:chartSpace",
		xmlwriter.Attr{Name: "xmlns:c", Value: nsChart},
		xmlwriter.Attr{Name: "xmlns:a", Value: nsDrawingMain},
		xmlwriter.Attr{Name: "xmlns:r", Value: nsRelationships},
	)
}

// writeLang writes the <c:lang> element.
func (c *Chart) writeLang(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:lang", xmlwriter.Attr{Name: "val", Value: valLang})
}

// writeChart writes the <c:chart> element and its children.
func (c *Chart) writeChart(xw *xmlwriter.Writer) error {
	xw.StartTag("c:chart")

	if err := c.writePlotArea(xw); err != nil {
		return err
	}
	c.writeLegend(xw)
	c.writePlotVisOnly(xw)

	xw.EndTag("c:chart")
	return nil
}

// writePlotArea writes the <c:plotArea> element: the layout, the chart-kind
// body, and the axis pair.
func (c *Chart) writePlotArea(xw *xmlwriter.Writer) error {
	xw.StartTag("c:plotArea")

	c.writeLayout(xw)
	if err := c.writeChartType(xw); err != nil {
		return err
	}
	c.writeCategoryAxis(xw)
	c.writeValueAxis(xw)

	xw.EndTag("c:plotArea")
	return nil
}

// writeChartType dispatches to the body writer for the chart's kind. Every
// supported kind is a case here.
func (c *Chart) writeChartType(xw *xmlwriter.Writer) error {
	switch c.kind {
	case TypeBarClustered:
		c.writeBarChart(xw)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedType, string(c.kind))
	}
}

// writeBarChart writes the <c:barChart> element with one <c:ser> per series
// in list order, then the trailing axis id pair.
func (c *Chart) writeBarChart(xw *xmlwriter.Writer) {
	xw.StartTag("c:barChart")

	c.writeBarDir(xw)
	c.writeGrouping(xw)
	for i, s := range c.series {
		c.writeSer(xw, i, s)
	}
	c.writeAxisIDs(xw)

	xw.EndTag("c:barChart")
}

// writeBarDir writes the <c:barDir> element.
func (c *Chart) writeBarDir(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:barDir", xmlwriter.Attr{Name: "val", Value: valBarDir})
}

// writeGrouping writes the <c:grouping> element.
func (c *Chart) writeGrouping(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:grouping", xmlwriter.Attr{Name: "val", Value: valGrouping})
}

// writeSer writes one <c:ser> element. index is the series' position in the
// list; idx and order both take it, since no reordering facility exists.
func (c *Chart) writeSer(xw *xmlwriter.Writer, index int, s *Series) {
	xw.StartTag("c:ser")

	c.writeIdx(xw, index)
	c.writeOrder(xw, index)
	c.writeVal(xw, s)

	xw.EndTag("c:ser")
}

// writeIdx writes the <c:idx> element.
func (c *Chart) writeIdx(xw *xmlwriter.Writer, index int) {
	xw.EmptyTag("c:idx", xmlwriter.Attr{Name: "val", Value: strconv.Itoa(index)})
}

// writeOrder writes the <c:order> element.
func (c *Chart) writeOrder(xw *xmlwriter.Writer, index int) {
	xw.EmptyTag("c:order", xmlwriter.Attr{Name: "val", Value: strconv.Itoa(index)})
}

// writeVal writes the <c:val> element holding the series' value reference.
func (c *Chart) writeVal(xw *xmlwriter.Writer, s *Series) {
	xw.StartTag("c:val")
	c.writeNumRef(xw, s.ValueRange)
	xw.EndTag("c:val")
}

// writeNumRef writes the <c:numRef> element.
func (c *Chart) writeNumRef(xw *xmlwriter.Writer, ref string) {
	xw.StartTag("c:numRef")
	c.writeF(xw, ref)
	xw.EndTag("c:numRef")
}

// writeF writes the <c:f> element.
func (c *Chart) writeF(xw *xmlwriter.Writer, ref string) {
	xw.DataElement("c:f", ref)
}

// writeAxisIDs writes the trailing <c:axId> pair of a chart-kind body.
func (c *Chart) writeAxisIDs(xw *xmlwriter.Writer) {
	c.writeAxisID(xw, c.axisID1)
	c.writeAxisID(xw, c.axisID2)
}

// writeAxisID writes one <c:axId> element.
func (c *Chart) writeAxisID(xw *xmlwriter.Writer, id uint32) {
	xw.EmptyTag("c:axId", xmlwriter.Attr{Name: "val", Value: formatAxisID(id)})
}

// writeCategoryAxis writes the <c:catAx> element, usually the X axis.
func (c *Chart) writeCategoryAxis(xw *xmlwriter.Writer) {
	xw.StartTag("c:catAx")

	c.writeAxisID(xw, c.axisID1)
	c.writeScaling(xw)
	c.writeAxisPos(xw, valAxisPosLeft)
	c.writeTickLabelPos(xw)
	c.writeCrossAxis(xw, c.axisID2)
	c.writeCrosses(xw)
	c.writeAuto(xw)
	c.writeLabelAlign(xw)
	c.writeLabelOffset(xw)

	xw.EndTag("c:catAx")
}

// writeValueAxis writes the <c:valAx> element.
func (c *Chart) writeValueAxis(xw *xmlwriter.Writer) {
	xw.StartTag("c:valAx")

	c.writeAxisID(xw, c.axisID2)
	c.writeScaling(xw)
	c.writeAxisPos(xw, valAxisPosBottom)
	c.writeMajorGridlines(xw)
	c.writeNumberFormat(xw)
	c.writeTickLabelPos(xw)
	c.writeCrossAxis(xw, c.axisID1)
	c.writeCrosses(xw)
	c.writeCrossBetween(xw)

	xw.EndTag("c:valAx")
}

// writeScaling writes the <c:scaling> element.
func (c *Chart) writeScaling(xw *xmlwriter.Writer) {
	xw.StartTag("c:scaling")
	c.writeOrientation(xw)
	xw.EndTag("c:scaling")
}

// writeOrientation writes the <c:orientation> element.
func (c *Chart) writeOrientation(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:orientation", xmlwriter.Attr{Name: "val", Value: valOrientation})
}

// writeAxisPos writes the <c:axPos> element.
func (c *Chart) writeAxisPos(xw *xmlwriter.Writer, position string) {
	xw.EmptyTag("c:axPos", xmlwriter.Attr{Name: "val", Value: position})
}

// writeTickLabelPos writes the <c:tickLblPos> element.
func (c *Chart) writeTickLabelPos(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:tickLblPos", xmlwriter.Attr{Name: "val", Value: valTickLabelPos})
}

// writeCrossAxis writes the <c:crossAx> element.
func (c *Chart) writeCrossAxis(xw *xmlwriter.Writer, id uint32) {
	xw.EmptyTag("c:crossAx", xmlwriter.Attr{Name: "val", Value: formatAxisID(id)})
}

// writeCrosses writes the <c:crosses> element.
func (c *Chart) writeCrosses(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:crosses", xmlwriter.Attr{Name: "val", Value: valCrosses})
}

// writeAuto writes the <c:auto> element.
func (c *Chart) writeAuto(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:auto", xmlwriter.Attr{Name: "val", Value: valAuto})
}

// writeLabelAlign writes the <c:lblAlgn> element.
func (c *Chart) writeLabelAlign(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:lblAlgn", xmlwriter.Attr{Name: "val", Value: valLabelAlign})
}

// writeLabelOffset writes the <c:lblOffset> element.
func (c *Chart) writeLabelOffset(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:lblOffset", xmlwriter.Attr{Name: "val", Value: valLabelOffset})
}

// writeMajorGridlines writes the <c:majorGridlines> element.
func (c *Chart) writeMajorGridlines(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:majorGridlines")
}

// writeNumberFormat writes the <c:numFmt> element.
func (c *Chart) writeNumberFormat(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:numFmt",
		xmlwriter.Attr{Name: "formatCode", Value: valNumberFormat},
		xmlwriter.Attr{Name: "sourceLinked", Value: valSourceLinked},
	)
}

// writeCrossBetween writes the <c:crossBetween> element.
func (c *Chart) writeCrossBetween(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:crossBetween", xmlwriter.Attr{Name: "val", Value: valCrossBetween})
}

// writeLegend writes the <c:legend> element.
func (c *Chart) writeLegend(xw *xmlwriter.Writer) {
	xw.StartTag("c:legend")
	c.writeLegendPos(xw)
	c.writeLayout(xw)
	xw.EndTag("c:legend")
}

// writeLegendPos writes the <c:legendPos> element.
func (c *Chart) writeLegendPos(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:legendPos", xmlwriter.Attr{Name: "val", Value: valLegendPos})
}

// writeLayout writes the <c:layout> element.
func (c *Chart) writeLayout(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:layout")
}

// writePlotVisOnly writes the <c:plotVisOnly> element.
func (c *Chart) writePlotVisOnly(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:plotVisOnly", xmlwriter.Attr{Name: "val", Value: valPlotVisOnly})
}

// writePrintSettings writes the <c:printSettings> element.
func (c *Chart) writePrintSettings(xw *xmlwriter.Writer) {
	xw.StartTag("c:printSettings")

	c.writeHeaderFooter(xw)
	c.writePageMargins(xw)
	c.writePageSetup(xw)

	xw.EndTag("c:printSettings")
}

// writeHeaderFooter writes the <c:headerFooter> element.
func (c *Chart) writeHeaderFooter(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:headerFooter")
}

// writePageMargins writes the <c:pageMargins> element with the default
// print margins in inches.
func (c *Chart) writePageMargins(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:pageMargins",
		xmlwriter.Attr{Name: "b", Value: valMarginBottom},
		xmlwriter.Attr{Name: "l", Value: valMarginLeft},
		xmlwriter.Attr{Name: "r", Value: valMarginRight},
		xmlwriter.Attr{Name: "t", Value: valMarginTop},
		xmlwriter.Attr{Name: "header", Value: valMarginHeader},
		xmlwriter.Attr{Name: "footer", Value: valMarginFooter},
	)
}

// writePageSetup writes the <c:pageSetup> element.
func (c *Chart) writePageSetup(xw *xmlwriter.Writer) {
	xw.EmptyTag("c:pageSetup")
}

func formatAxisID(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}
