package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

func TestGetLatestRatesHandler(t *testing.T) {
	latest := []models.LatestRate{
		{DigitalCode: "840", LetterCode: "USD", Units: 1, CurrencyName: "US Dollar", ExchangeRate: 92.5, Date: "2024-01-15", Source: "cbr.ru"},
		{DigitalCode: "978", LetterCode: "EUR", Units: 1, CurrencyName: "Euro", ExchangeRate: 100.25, Date: "2024-01-16", Source: "cbr.ru"},
	}

	tests := []struct {
		name               string
		query              string
		setupMocks         func(mockReader *MockLatestRatesReader)
		expectedStatusCode int
		expectedCount      int
	}{
		{
			name:  "all codes",
			query: "",
			setupMocks: func(mockReader *MockLatestRatesReader) {
				mockReader.EXPECT().LatestRates(gomock.Any(), gomock.Nil()).Return(latest, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedCount:      2,
		},
		{
			name:  "filtered codes",
			query: "?currency_codes=USD&currency_codes=EUR",
			setupMocks: func(mockReader *MockLatestRatesReader) {
				mockReader.EXPECT().LatestRates(gomock.Any(), []string{"USD", "EUR"}).Return(latest, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedCount:      2,
		},
		{
			name:  "unknown code yields empty list",
			query: "?currency_codes=XXX",
			setupMocks: func(mockReader *MockLatestRatesReader) {
				mockReader.EXPECT().LatestRates(gomock.Any(), []string{"XXX"}).Return([]models.LatestRate{}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedCount:      0,
		},
		{
			name:  "internal server error",
			query: "",
			setupMocks: func(mockReader *MockLatestRatesReader) {
				mockReader.EXPECT().LatestRates(gomock.Any(), gomock.Nil()).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := NewMockLatestRatesReader(ctrl)
			tt.setupMocks(mockReader)

			req := httptest.NewRequest(http.MethodGet, "/currency-rates/latest"+tt.query, nil)
			rr := httptest.NewRecorder()

			handler := NewGetLatestRatesHandler(mockReader)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			if tt.expectedStatusCode == http.StatusOK {
				var resp models.LatestRatesResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp.Rates, tt.expectedCount)
			}
		})
	}
}
