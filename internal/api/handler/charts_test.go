package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func chartsConfig() *config.Config {
	return &config.Config{
		Charts: config.Charts{Width: 600, Height: 300},
	}
}

func day(yearDay int) time.Time {
	return time.Date(2018, 1, yearDay, 0, 0, 0, 0, time.UTC)
}

func TestDailyOrdersChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	t.Run("Renderiza PNG", func(t *testing.T) {
		mockReporter.EXPECT().DailyOrders(gomock.Any()).Return(&domain.DailyOrdersReport{
			Year: 2018,
			Entries: []*domain.DailyOrderCount{
				{Date: day(1), Orders: 3},
				{Date: day(2), Orders: 5},
				{Date: day(3), Orders: 2},
			},
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/charts/orders-daily.png", nil)

		DailyOrdersChart(mockReporter, chartsConfig()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		require.Greater(t, rec.Body.Len(), len(pngMagic))
		assert.Equal(t, pngMagic, rec.Body.Bytes()[:len(pngMagic)])
	})

	t.Run("Um único dia ainda renderiza", func(t *testing.T) {
		mockReporter.EXPECT().DailyOrders(gomock.Any()).Return(&domain.DailyOrdersReport{
			Year: 2018,
			Entries: []*domain.DailyOrderCount{
				{Date: day(10), Orders: 4},
			},
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/charts/orders-daily.png", nil)

		DailyOrdersChart(mockReporter, chartsConfig()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	})

	t.Run("Período sem pedidos", func(t *testing.T) {
		mockReporter.EXPECT().DailyOrders(gomock.Any()).Return(&domain.DailyOrdersReport{
			Year:    2018,
			Entries: nil,
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/charts/orders-daily.png", nil)

		DailyOrdersChart(mockReporter, chartsConfig()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "SRV_002")
	})

	t.Run("Data inválida", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/charts/orders-daily.png?start_date=bad", nil)

		DailyOrdersChart(mockReporter, chartsConfig()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPaymentColorHex(t *testing.T) {
	// Tipos conhecidos têm cor fixa, independente da posição no ranking
	assert.Equal(t, "F08080", paymentColorHex("credit_card", 3))
	assert.Equal(t, "87CEFA", paymentColorHex("boleto", 0))
	assert.Equal(t, "FFB6C1", paymentColorHex("voucher", 1))
	assert.Equal(t, "20B2AA", paymentColorHex("debit_card", 2))

	// Tipos desconhecidos caem na paleta posicional
	assert.Equal(t, paymentPaletteHex[1], paymentColorHex("pix", 1))
	assert.Equal(t, paymentPaletteHex[0], paymentColorHex("pix", len(paymentPaletteHex)))
}

func TestTopCitiesChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	mockReporter.EXPECT().TopCities(5).Return([]*domain.CityCustomerCount{
		{City: "sao paulo", Customers: 40},
		{City: "rio de janeiro", Customers: 25},
		{City: "campinas", Customers: 10},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/charts/customer-cities.png", nil)

	TopCitiesChart(mockReporter, chartsConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.Greater(t, rec.Body.Len(), len(pngMagic))
	assert.Equal(t, pngMagic, rec.Body.Bytes()[:len(pngMagic)])
}

func TestPaymentTypesChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	mockReporter.EXPECT().PaymentDistribution().Return([]*domain.PaymentTypeShare{
		{PaymentType: "credit_card", Count: 60, Percentage: 60.0},
		{PaymentType: "boleto", Count: 30, Percentage: 30.0},
		{PaymentType: "voucher", Count: 10, Percentage: 10.0},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/charts/payment-types.png", nil)

	PaymentTypesChart(mockReporter, chartsConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.Greater(t, rec.Body.Len(), len(pngMagic))
	assert.Equal(t, pngMagic, rec.Body.Bytes()[:len(pngMagic)])
}
