package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestDashboardPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2018, 12, 31, 0, 0, 0, 0, time.UTC)

	mockReporter.EXPECT().KPIs().Return(&domain.KPIReport{
		TotalRevenue:        98765.43,
		TotalRevenueDisplay: "$98,765.43",
		AverageOrderValue:   137,
		TotalOrders:         720,
		TotalOrdersDisplay:  "720",
		AverageDeliveryDays: 12.3,
	}, nil)

	mockReporter.EXPECT().DailyOrders(gomock.Any()).Return(&domain.DailyOrdersReport{
		Year:  2018,
		Range: &domain.DateRange{StartDate: &start, EndDate: &end},
		Entries: []*domain.DailyOrderCount{
			{Date: start, Orders: 2},
		},
	}, nil)

	// boleto na frente do ranking: a cor da legenda é fixa por tipo e não
	// acompanha a posição
	mockReporter.EXPECT().PaymentDistribution().Return([]*domain.PaymentTypeShare{
		{PaymentType: "boleto", Count: 500, Percentage: 69.4},
		{PaymentType: "credit_card", Count: 220, Percentage: 30.6},
	}, nil)

	cfg := &config.Config{
		App:    config.App{Title: "Sales Dashboard"},
		Charts: config.Charts{Width: 600, Height: 300},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	DashboardPage(mockReporter, cfg).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "Sales Dashboard")
	assert.Contains(t, body, "$98,765.43")
	assert.Contains(t, body, "Number of Orders per Day in 2018")
	assert.Contains(t, body, `value="2018-01-01"`)
	assert.Contains(t, body, `value="2018-12-31"`)
	assert.Contains(t, body, "/v1/charts/customer-cities.png")

	// Mesmo com boleto em primeiro, cada tipo mantém sua cor fixa
	assert.Contains(t, body, `style="background: #87CEFA"></span>boleto`)
	assert.Contains(t, body, `style="background: #F08080"></span>credit_card`)
}
