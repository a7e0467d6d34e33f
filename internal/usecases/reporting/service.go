package reporting

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

// ErrEmptyDataset indica que o dataset foi carregado sem nenhum registro
var ErrEmptyDataset = errors.New("o dataset não contém registros")

// Service implementa a interface Reporter sobre o dataset em memória
type Service struct {
	cfg        *config.Config
	records    []*domain.SaleRecord
	latestYear int
}

// NewService cria o serviço de relatórios sobre o dataset carregado.
// O slice de registros nunca é alterado depois daqui, então o serviço é
// seguro para uso concorrente pelos handlers.
func NewService(cfg *config.Config, records []*domain.SaleRecord) (Reporter, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	latestYear := 0
	for _, record := range records {
		if year := record.PurchasedAt.Year(); year > latestYear {
			latestYear = year
		}
	}

	logrus.WithFields(logrus.Fields{
		"records":     len(records),
		"latest_year": latestYear,
	}).Info("Serviço de relatórios inicializado")

	return &Service{
		cfg:        cfg,
		records:    records,
		latestYear: latestYear,
	}, nil
}

// LatestYear retorna o ano mais recente presente no dataset
func (s *Service) LatestYear() int {
	return s.latestYear
}

// KPIs calcula os indicadores da faixa superior do dashboard
func (s *Service) KPIs() (*domain.KPIReport, error) {
	var totalRevenue float64
	revenueByOrder := make(map[string]float64)

	var deliveryDaysSum float64
	deliveredCount := 0

	for _, record := range s.records {
		totalRevenue += record.TotalPrice
		revenueByOrder[record.OrderID] += record.TotalPrice

		if record.Delivered() {
			deliveryDaysSum += record.DeliveredAt.Sub(record.PurchasedAt).Hours() / 24
			deliveredCount++
		}
	}

	totalOrders := len(revenueByOrder)

	// Ticket médio: média das receitas agrupadas por pedido, arredondada
	// para o inteiro mais próximo
	var orderRevenueSum float64
	for _, revenue := range revenueByOrder {
		orderRevenueSum += revenue
	}
	averageOrderValue := int64(orderRevenueSum/float64(totalOrders) + 0.5)

	averageDeliveryDays := 0.0
	if deliveredCount > 0 {
		averageDeliveryDays = utils.RoundWithOneDecimalPlace(deliveryDaysSum / float64(deliveredCount))
	}

	return &domain.KPIReport{
		TotalRevenue:         utils.RoundWithTwoDecimalPlace(totalRevenue),
		TotalRevenueDisplay:  utils.FormatUSD(totalRevenue),
		AverageOrderValue:    averageOrderValue,
		TotalOrders:          totalOrders,
		TotalOrdersDisplay:   utils.FormatCount(totalOrders),
		AverageDeliveryDays:  averageDeliveryDays,
		DeliveredOrdersCount: deliveredCount,
	}, nil
}

// DailyOrders retorna a contagem de linhas por dia dentro do ano mais recente
func (s *Service) DailyOrders(dateRange *domain.DateRange) (*domain.DailyOrdersReport, error) {
	yearStart := time.Date(s.latestYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(s.latestYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	start, end := yearStart, yearEnd

	if dateRange != nil {
		if dateRange.StartDate != nil && !dateRange.StartDate.IsZero() {
			start = utils.TruncateToDay(*dateRange.StartDate)
		}
		if dateRange.EndDate != nil && !dateRange.EndDate.IsZero() {
			end = utils.TruncateToDay(*dateRange.EndDate)
		}
	}

	if start.After(end) {
		return nil, errors.New("a data de início não pode ser posterior à data de fim")
	}

	// O seletor de período é limitado ao ano mais recente do dataset: as duas
	// pontas são recortadas para dentro dele, inclusive quando o período pedido
	// cai inteiro antes ou depois do ano
	start = clampToYear(start, yearStart, yearEnd)
	end = clampToYear(end, yearStart, yearEnd)

	countsByDay := make(map[time.Time]int)
	for _, record := range s.records {
		if record.PurchasedAt.Year() != s.latestYear {
			continue
		}

		day := utils.TruncateToDay(record.PurchasedAt)
		if day.Before(start) || day.After(end) {
			continue
		}

		countsByDay[day]++
	}

	entries := make([]*domain.DailyOrderCount, 0, len(countsByDay))
	for day, count := range countsByDay {
		entries = append(entries, &domain.DailyOrderCount{Date: day, Orders: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return &domain.DailyOrdersReport{
		Year: s.latestYear,
		Range: &domain.DateRange{
			StartDate: &start,
			EndDate:   &end,
		},
		Entries: entries,
	}, nil
}

// clampToYear recorta uma data para dentro dos limites do ano. Como o recorte
// preserva a ordem das pontas, um período válido continua válido depois dele.
func clampToYear(t, yearStart, yearEnd time.Time) time.Time {
	if t.Before(yearStart) {
		return yearStart
	}
	if t.After(yearEnd) {
		return yearEnd
	}
	return t
}

// TopCities retorna as cidades com mais clientes distintos
func (s *Service) TopCities(limit int) ([]*domain.CityCustomerCount, error) {
	if limit <= 0 {
		return nil, errors.Errorf("limite inválido: %d", limit)
	}

	customersByCity := make(map[string]map[string]struct{})
	for _, record := range s.records {
		customers, ok := customersByCity[record.CustomerCity]
		if !ok {
			customers = make(map[string]struct{})
			customersByCity[record.CustomerCity] = customers
		}
		customers[record.CustomerID] = struct{}{}
	}

	cities := make([]*domain.CityCustomerCount, 0, len(customersByCity))
	for city, customers := range customersByCity {
		cities = append(cities, &domain.CityCustomerCount{
			City:      city,
			Customers: len(customers),
		})
	}

	// Empates são resolvidos pelo nome da cidade para manter a saída estável
	sort.Slice(cities, func(i, j int) bool {
		if cities[i].Customers != cities[j].Customers {
			return cities[i].Customers > cities[j].Customers
		}
		return cities[i].City < cities[j].City
	})

	if len(cities) > limit {
		cities = cities[:limit]
	}

	return cities, nil
}

// PaymentDistribution retorna a participação de cada tipo de pagamento
func (s *Service) PaymentDistribution() ([]*domain.PaymentTypeShare, error) {
	countsByType := make(map[string]int)
	total := 0

	for _, record := range s.records {
		if record.PaymentType == domain.PaymentTypeNotDefined {
			continue
		}

		countsByType[record.PaymentType]++
		total++
	}

	if total == 0 {
		return nil, errors.New("nenhum registro com tipo de pagamento definido")
	}

	shares := make([]*domain.PaymentTypeShare, 0, len(countsByType))
	for paymentType, count := range countsByType {
		shares = append(shares, &domain.PaymentTypeShare{
			PaymentType: paymentType,
			Count:       count,
			Percentage:  utils.RoundWithOneDecimalPlace(float64(count) / float64(total) * 100),
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].PaymentType < shares[j].PaymentType
	})

	return shares, nil
}
