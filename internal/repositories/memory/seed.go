package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tpaylabs/readiness_backend/internal/core/domain"
)

// SeedTransactions returns a fresh copy of the demonstration data set loaded at
// start-up and restored on reset.
func SeedTransactions() []domain.Transaction {
	return []domain.Transaction{
		{
			ID:             "1",
			Date:           time.Date(2024, 7, 21, 10, 30, 0, 0, time.UTC),
			Amount:         decimal.NewFromInt(50),
			CardNumber:     "4242424242424242",
			CardType:       domain.CardVisa,
			ExpiryDate:     "12/25",
			Status:         domain.StatusSuccess,
			ResponseCode:   "00",
			GatewayMessage: "Transaction Approved",
			TransactionID:  "tpay_mock_1a2b3c4d",
		},
		{
			ID:             "2",
			Date:           time.Date(2024, 7, 21, 9, 15, 0, 0, time.UTC),
			Amount:         decimal.NewFromInt(10),
			CardNumber:     "5555555555555555",
			CardType:       domain.CardMastercard,
			ExpiryDate:     "11/24",
			Status:         domain.StatusFailed,
			ResponseCode:   "51",
			GatewayMessage: "Insufficient Funds",
			TransactionID:  "tpay_mock_5e6f7g8h",
		},
		{
			ID:             "3",
			Date:           time.Date(2024, 7, 20, 18, 45, 0, 0, time.UTC),
			Amount:         decimal.RequireFromString("120.5"),
			CardNumber:     "378282246310005",
			CardType:       domain.CardAmex,
			ExpiryDate:     "01/26",
			Status:         domain.StatusSuccess,
			ResponseCode:   "00",
			GatewayMessage: "Transaction Approved",
			TransactionID:  "tpay_mock_9i0j1k2l",
		},
		{
			ID:             "4",
			Date:           time.Date(2024, 7, 20, 15, 0, 0, 0, time.UTC),
			Amount:         decimal.NewFromInt(10),
			CardNumber:     "4242424242424242",
			CardType:       domain.CardVisa,
			ExpiryDate:     "12/25",
			Status:         domain.StatusSuccess,
			ResponseCode:   "00",
			GatewayMessage: "Transaction Approved",
			TransactionID:  "tpay_mock_3m4n5o6p",
		},
		{
			ID:             "5",
			Date:           time.Date(2024, 7, 19, 11, 20, 0, 0, time.UTC),
			Amount:         decimal.NewFromInt(250),
			CardNumber:     "5555555555555555",
			CardType:       domain.CardMastercard,
			ExpiryDate:     "11/24",
			Status:         domain.StatusFailed,
			ResponseCode:   "05",
			GatewayMessage: "Do Not Honor",
			TransactionID:  "tpay_mock_7q8r9s0t",
		},
	}
}
