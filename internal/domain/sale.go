package domain

import "time"

// PaymentTypeNotDefined é o valor usado no dataset para pagamentos sem tipo
// identificado; ele é descartado na distribuição de pagamentos.
const PaymentTypeNotDefined = "not_defined"

// SaleRecord representa uma linha do dataset de vendas pré-agregado (pedido,
// cliente, cidade, datas, valor e tipo de pagamento). O dataset é carregado
// uma única vez na inicialização e nunca é alterado depois disso.
type SaleRecord struct {
	OrderID      string
	CustomerID   string
	CustomerCity string
	PurchasedAt  time.Time
	DeliveredAt  *time.Time
	TotalPrice   float64
	PaymentType  string
}

// Delivered indica se o pedido já tem data de entrega registrada.
func (s *SaleRecord) Delivered() bool {
	return s.DeliveredAt != nil && !s.DeliveredAt.IsZero()
}
