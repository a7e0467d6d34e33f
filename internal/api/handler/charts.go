package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

// Paletas dos gráficos; os hex também alimentam a legenda da página HTML
var (
	cityPaletteHex = []string{
		"90EE90", // lightgreen
		"87CEEB", // skyblue
		"FA8072", // salmon
		"FFD700", // gold
		"FFA500", // orange
	}

	paymentPaletteHex = []string{
		"F08080", // lightcoral
		"87CEFA", // lightskyblue
		"FFB6C1", // lightpink
		"20B2AA", // lightseagreen
	}

	// Cada tipo conhecido de pagamento tem uma cor fixa, para que a legenda e
	// a pizza não mudem de cor quando o ranking muda
	paymentTypeColorHex = map[string]string{
		"credit_card": "F08080", // lightcoral
		"boleto":      "87CEFA", // lightskyblue
		"voucher":     "FFB6C1", // lightpink
		"debit_card":  "20B2AA", // lightseagreen
	}

	cityPalette = paletteFromHex(cityPaletteHex)
)

// paymentColorHex resolve a cor de um tipo de pagamento; tipos desconhecidos
// caem na paleta posicional
func paymentColorHex(paymentType string, position int) string {
	if hex, ok := paymentTypeColorHex[paymentType]; ok {
		return hex
	}
	return paymentPaletteHex[position%len(paymentPaletteHex)]
}

func paletteFromHex(hexes []string) []drawing.Color {
	colors := make([]drawing.Color, 0, len(hexes))
	for _, hex := range hexes {
		colors = append(colors, drawing.ColorFromHex(hex))
	}
	return colors
}

// DailyOrdersChart renderiza a série de pedidos por dia do ano mais recente
func DailyOrdersChart(service reporting.Reporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dateRange, ok := parseDateRange(w, r)
		if !ok {
			return
		}

		report, err := service.DailyOrders(dateRange)
		if err != nil {
			logger.WithError(err).Warn("charts: invalid date range for daily orders chart")
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		times := make([]time.Time, 0, len(report.Entries))
		values := make([]float64, 0, len(report.Entries))
		for _, entry := range report.Entries {
			times = append(times, entry.Date)
			values = append(values, float64(entry.Orders))
		}

		if len(times) == 0 {
			logger.WithFields(log.Fields{
				"year": report.Year,
			}).Warn("charts: no orders in the selected range")
			apiErrors.WriteError(w, apiErrors.ErrChartRender, "nenhum pedido no período selecionado", nil)
			return
		}

		// Um ponto único não forma uma série; duplicamos o ponto para o
		// renderizador ter um intervalo válido
		if len(times) == 1 {
			times = append(times, times[0].Add(24*time.Hour))
			values = append(values, values[0])
		}

		seriesStyle := chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorBlue.WithAlpha(64),
		}

		graph := chart.Chart{
			Title:      fmt.Sprintf("Number of Orders per Day in %d", report.Year),
			Width:      cfg.Charts.Width,
			Height:     cfg.Charts.Height,
			Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
			XAxis: chart.XAxis{
				ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			},
			Series: []chart.Series{
				chart.TimeSeries{
					Name:    "Orders",
					XValues: times,
					YValues: values,
					Style:   seriesStyle,
				},
			},
		}

		renderPNG(w, r, &graph, "daily orders")
	})
}

// TopCitiesChart renderiza o gráfico de barras de clientes por cidade
func TopCitiesChart(service reporting.Reporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cities, err := service.TopCities(defaultTopCitiesLimit)
		if err != nil {
			logger.WithError(err).Error("charts: failed to compute top cities")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		bars := make([]chart.Value, 0, len(cities))
		for i, city := range cities {
			color := cityPalette[i%len(cityPalette)]
			bars = append(bars, chart.Value{
				Value: float64(city.Customers),
				Label: city.City,
				Style: chart.Style{
					FillColor:   color,
					StrokeColor: color,
				},
			})
		}

		graph := chart.BarChart{
			Title:      "Customer Demographic",
			Width:      cfg.Charts.Width,
			Height:     cfg.Charts.Height,
			BarWidth:   80,
			Background: chart.Style{Padding: chart.Box{Top: 40}},
			Bars:       bars,
		}

		renderPNG(w, r, &graph, "top cities")
	})
}

// PaymentTypesChart renderiza o gráfico de pizza dos tipos de pagamento
func PaymentTypesChart(service reporting.Reporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		shares, err := service.PaymentDistribution()
		if err != nil {
			logger.WithError(err).Error("charts: failed to compute payment distribution")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		values := make([]chart.Value, 0, len(shares))
		for i, share := range shares {
			color := drawing.ColorFromHex(paymentColorHex(share.PaymentType, i))
			values = append(values, chart.Value{
				Value: float64(share.Count),
				Label: fmt.Sprintf("%s %.1f%%", share.PaymentType, share.Percentage),
				Style: chart.Style{
					FillColor:   color,
					StrokeColor: color,
				},
			})
		}

		graph := chart.PieChart{
			Title:  "Distribution of Payment Types",
			Width:  cfg.Charts.Height, // pizza quadrada, lado = altura dos demais
			Height: cfg.Charts.Height,
			Values: values,
		}

		renderPNG(w, r, &graph, "payment types")
	})
}

// renderable é o que os três tipos de gráfico têm em comum
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// renderPNG desenha o gráfico em memória antes de responder, para que uma
// falha de renderização não deixe uma resposta PNG truncada
func renderPNG(w http.ResponseWriter, r *http.Request, graph renderable, name string) {
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		log.ForContext(r.Context()).WithError(err).Errorf("charts: failed to render %s chart", name)
		apiErrors.WriteError(w, apiErrors.ErrChartRender, err.Error(), nil)
		return
	}

	w.Header().Set("Content-Type", chart.ContentTypePNG)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.ForContext(r.Context()).WithError(err).Errorf("charts: failed to write %s chart response", name)
	}
}
