package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// Colunas obrigatórias do dataset pré-agregado
const (
	colOrderID     = "order_id"
	colCustomerID  = "customer_unique_id"
	colCity        = "customer_city"
	colPurchasedAt = "order_purchase_timestamp"
	colDeliveredAt = "order_delivered_customer_date"
	colTotalPrice  = "total_price"
	colPaymentType = "payment_type"
)

var requiredColumns = []string{
	colOrderID,
	colCustomerID,
	colCity,
	colPurchasedAt,
	colDeliveredAt,
	colTotalPrice,
	colPaymentType,
}

// Formatos aceitos para os timestamps do dataset
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// Loader carrega o dataset de vendas a partir de um arquivo CSV. O resultado
// é imutável: depois de carregado, nenhum registro é alterado.
type Loader interface {
	Load(path string) ([]*domain.SaleRecord, error)
}

type csvLoader struct{}

func NewLoader() Loader {
	return &csvLoader{}
}

func (l *csvLoader) Load(path string) ([]*domain.SaleRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o dataset %s", path)
	}
	defer file.Close()

	records, err := l.read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o dataset %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"records": len(records),
	}).Info("Dataset de vendas carregado com sucesso")

	return records, nil
}

func (l *csvLoader) read(r io.Reader) ([]*domain.SaleRecord, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho")
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[name] = i
	}

	for _, required := range requiredColumns {
		if _, ok := colIndex[required]; !ok {
			return nil, errors.Errorf("coluna obrigatória ausente no cabeçalho: %s", required)
		}
	}

	var records []*domain.SaleRecord
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler a linha %d", line+1)
		}
		line++

		record, err := parseRecord(row, colIndex)
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d inválida", line)
		}

		records = append(records, record)
	}

	return records, nil
}

func parseRecord(row []string, colIndex map[string]int) (*domain.SaleRecord, error) {
	purchasedAt, err := parseTimestamp(row[colIndex[colPurchasedAt]])
	if err != nil {
		return nil, errors.Wrapf(err, "campo %s inválido", colPurchasedAt)
	}
	if purchasedAt == nil {
		return nil, errors.Errorf("campo %s não pode ser vazio", colPurchasedAt)
	}

	// A data de entrega é opcional: pedidos ainda não entregues vêm vazios
	deliveredAt, err := parseTimestamp(row[colIndex[colDeliveredAt]])
	if err != nil {
		return nil, errors.Wrapf(err, "campo %s inválido", colDeliveredAt)
	}

	totalPrice, err := strconv.ParseFloat(row[colIndex[colTotalPrice]], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "campo %s inválido", colTotalPrice)
	}

	return &domain.SaleRecord{
		OrderID:      row[colIndex[colOrderID]],
		CustomerID:   row[colIndex[colCustomerID]],
		CustomerCity: row[colIndex[colCity]],
		PurchasedAt:  *purchasedAt,
		DeliveredAt:  deliveredAt,
		TotalPrice:   totalPrice,
		PaymentType:  row[colIndex[colPaymentType]],
	}, nil
}

func parseTimestamp(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return &t, nil
		}
		lastErr = err
	}

	return nil, lastErr
}
