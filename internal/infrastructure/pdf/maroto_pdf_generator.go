// Package pdf implementa el reporte imprimible de calificaciones de una
// tienda que descarga su dueño desde el panel.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Promedio + total            │
//	│  Dirección / Email de la tienda                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Calificación | Cliente | Email                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Tiendas-api/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa reports.RatingsPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateRatingsPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateRatingsPDF(_ context.Context, report *reports.RatingsReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de calificaciones", true).
		WithAuthor(report.Store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range report.Ratings {
		m.AddRows(row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d / 5", r.Rating), props.Text{Size: 9, Align: align.Center})),
			col.New(5).Add(text.New(r.RaterName, props.Text{Size: 9})),
			col.New(5).Add(text.New(r.RaterEmail, props.Text{Size: 9, Color: colorGray})),
		))
	}
	if len(report.Ratings) == 0 {
		m.AddRows(row.New(8).Add(
			col.New(12).Add(text.New("La tienda aún no tiene calificaciones.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Style: fontstyle.Italic,
			})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre + dirección de la tienda (izq) y promedio + total (der).
func headerRow(report *reports.RatingsReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(report.Store.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(report.Store.Address, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Promedio: "+report.AvgRating.StringFixed(2)+" / 5", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New(fmt.Sprintf("%d calificaciones", len(report.Ratings)), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: encabezado de la tabla de calificaciones.
func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(7).Add(
		col.New(2).Add(text.New("Calificación", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Center})),
		col.New(5).Add(text.New("Cliente", header)),
		col.New(5).Add(text.New("Email", header)),
	)
}
