package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Dashboard retorna a rota da página HTML do dashboard
func Dashboard(service reporting.Reporter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(service, cfg),
		},
	}
}

// Reports retorna as rotas JSON com as agregações do dashboard
func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service),
		},
		{
			Path:    "/v1/orders/daily",
			Method:  http.MethodGet,
			Handler: GetDailyOrders(service),
		},
		{
			Path:    "/v1/customers/cities",
			Method:  http.MethodGet,
			Handler: GetTopCities(service),
		},
		{
			Path:    "/v1/payments/distribution",
			Method:  http.MethodGet,
			Handler: GetPaymentDistribution(service),
		},
	}
}

// Charts retorna as rotas que renderizam os gráficos em PNG
func Charts(service reporting.Reporter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts/orders-daily.png",
			Method:  http.MethodGet,
			Handler: DailyOrdersChart(service, cfg),
		},
		{
			Path:    "/v1/charts/customer-cities.png",
			Method:  http.MethodGet,
			Handler: TopCitiesChart(service, cfg),
		},
		{
			Path:    "/v1/charts/payment-types.png",
			Method:  http.MethodGet,
			Handler: PaymentTypesChart(service, cfg),
		},
	}
}
