package handler

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// legendEntry é um item da legenda de cores do gráfico de pagamentos
type legendEntry struct {
	Color template.CSS
	Label string
}

// pageData é tudo que o template da página precisa para renderizar
type pageData struct {
	Title          string
	KPIs           *domain.KPIReport
	Year           int
	MinDate        string
	MaxDate        string
	StartDate      string
	EndDate        string
	DailyChartURL  string
	CitiesChartURL string
	PaymentsURL    string
	PaymentLegend  []legendEntry
}

// DashboardPage renderiza a página HTML do dashboard com os quatro painéis
func DashboardPage(service reporting.Reporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dateRange, ok := parseDateRange(w, r)
		if !ok {
			return
		}

		kpis, err := service.KPIs()
		if err != nil {
			logger.WithError(err).Error("page: failed to compute KPIs")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		// O relatório diário também resolve o período efetivo (recortado ao
		// ano mais recente), que alimenta o seletor de datas da página
		report, err := service.DailyOrders(dateRange)
		if err != nil {
			logger.WithError(err).Warn("page: invalid date range")
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		shares, err := service.PaymentDistribution()
		if err != nil {
			logger.WithError(err).Error("page: failed to compute payment distribution")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		legend := make([]legendEntry, 0, len(shares))
		for i, share := range shares {
			legend = append(legend, legendEntry{
				Color: template.CSS("#" + paymentColorHex(share.PaymentType, i)),
				Label: share.PaymentType,
			})
		}

		start := report.Range.StartDate.Format(time.DateOnly)
		end := report.Range.EndDate.Format(time.DateOnly)

		dailyQuery := url.Values{}
		dailyQuery.Set("start_date", start)
		dailyQuery.Set("end_date", end)

		data := &pageData{
			Title:          cfg.App.Title,
			KPIs:           kpis,
			Year:           report.Year,
			MinDate:        fmt.Sprintf("%d-01-01", report.Year),
			MaxDate:        fmt.Sprintf("%d-12-31", report.Year),
			StartDate:      start,
			EndDate:        end,
			DailyChartURL:  "/v1/charts/orders-daily.png?" + dailyQuery.Encode(),
			CitiesChartURL: "/v1/charts/customer-cities.png",
			PaymentsURL:    "/v1/charts/payment-types.png",
			PaymentLegend:  legend,
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(w, data); err != nil {
			logger.WithError(err).Error("page: failed to execute template")
		}
	})
}
