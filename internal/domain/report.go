package domain

import (
	"time"
)

// DateRange é o filtro de período aplicado à série de pedidos por dia.
// As datas são inclusivas nas duas pontas.
type DateRange struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// KPIReport reúne os indicadores exibidos na faixa superior do dashboard.
type KPIReport struct {
	TotalRevenue         float64 `json:"total_revenue"`
	TotalRevenueDisplay  string  `json:"total_revenue_display"`
	AverageOrderValue    int64   `json:"average_order_value"`
	TotalOrders          int     `json:"total_orders"`
	TotalOrdersDisplay   string  `json:"total_orders_display"`
	AverageDeliveryDays  float64 `json:"average_delivery_days"`
	DeliveredOrdersCount int     `json:"delivered_orders_count"`
}

// DailyOrderCount é um ponto da série de pedidos por dia.
type DailyOrderCount struct {
	Date   time.Time `json:"date"`
	Orders int       `json:"orders"`
}

// DailyOrdersReport é a série de pedidos por dia dentro do ano mais recente
// do dataset, já recortada pelo período selecionado.
type DailyOrdersReport struct {
	Year    int                `json:"year"`
	Range   *DateRange         `json:"range"`
	Entries []*DailyOrderCount `json:"entries"`
}

// CityCustomerCount é a contagem de clientes distintos de uma cidade.
type CityCustomerCount struct {
	City      string `json:"city"`
	Customers int    `json:"customers"`
}

// PaymentTypeShare é a fatia de um tipo de pagamento na distribuição,
// já excluído o tipo não definido.
type PaymentTypeShare struct {
	PaymentType string  `json:"payment_type"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
}
