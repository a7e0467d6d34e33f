package reporting

import (
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// Reporter define as agregações servidas pelo dashboard
type Reporter interface {
	// KPIs calcula os indicadores da faixa superior: receita total, ticket
	// médio por pedido, total de pedidos distintos e tempo médio de entrega
	KPIs() (*domain.KPIReport, error)

	// DailyOrders retorna a série de pedidos por dia do ano mais recente do
	// dataset, recortada pelo período informado (inclusivo nas duas pontas)
	DailyOrders(dateRange *domain.DateRange) (*domain.DailyOrdersReport, error)

	// TopCities retorna as cidades com mais clientes distintos, em ordem
	// decrescente de contagem
	TopCities(limit int) ([]*domain.CityCustomerCount, error)

	// PaymentDistribution retorna a participação de cada tipo de pagamento,
	// excluído o tipo não definido; as fatias somam 100%
	PaymentDistribution() ([]*domain.PaymentTypeShare, error)

	// LatestYear retorna o ano mais recente presente no dataset
	LatestYear() int
}
