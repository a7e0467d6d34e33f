package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// defaultTopCitiesLimit é o tamanho do ranking de cidades do dashboard
const defaultTopCitiesLimit = 5

func GetKPIs(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kpis, err := service.KPIs()
		if err != nil {
			logger.WithError(err).Error("reports: failed to compute KPIs")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"total_orders": kpis.TotalOrders,
		}).Info("reports: KPIs computed")

		writeJSON(w, r, kpis)
	})
}

func GetDailyOrders(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dateRange, ok := parseDateRange(w, r)
		if !ok {
			return
		}

		report, err := service.DailyOrders(dateRange)
		if err != nil {
			logger.WithError(err).Warn("reports: invalid date range for daily orders")
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"year": report.Year,
			"days": len(report.Entries),
		}).Info("reports: daily orders computed")

		writeJSON(w, r, report)
	})
}

func GetTopCities(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := defaultTopCitiesLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				logger.WithField("limit", raw).Warn("reports: invalid limit parameter")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		cities, err := service.TopCities(limit)
		if err != nil {
			logger.WithError(err).Error("reports: failed to compute top cities")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, r, cities)
	})
}

func GetPaymentDistribution(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		shares, err := service.PaymentDistribution()
		if err != nil {
			logger.WithError(err).Error("reports: failed to compute payment distribution")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, r, shares)
	})
}

// parseDateRange lê os parâmetros start_date e end_date da query string.
// Parâmetros ausentes ficam nulos e o serviço aplica o período padrão.
func parseDateRange(w http.ResponseWriter, r *http.Request) (*domain.DateRange, bool) {
	logger := log.ForContext(r.Context())
	dateRange := &domain.DateRange{}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		startDate, err := utils.ParseDate(raw)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": raw,
				"error":      err.Error(),
			}).Warn("reports: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "start_date deve estar no formato YYYY-MM-DD", nil)
			return nil, false
		}
		dateRange.StartDate = startDate
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		endDate, err := utils.ParseDate(raw)
		if err != nil {
			logger.WithFields(log.Fields{
				"end_date": raw,
				"error":    err.Error(),
			}).Warn("reports: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "end_date deve estar no formato YYYY-MM-DD", nil)
			return nil, false
		}
		dateRange.EndDate = endDate
	}

	return dateRange, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("reports: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
