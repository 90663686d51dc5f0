package domain

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// CardType is the card network derived from the leading digits of a card number.
type CardType string

const (
	CardVisa       CardType = "Visa"
	CardMastercard CardType = "Mastercard"
	CardAmex       CardType = "Amex"
	CardOther      CardType = "Other"
)

// CardTypes lists every accepted card type, in display order.
var CardTypes = []CardType{CardVisa, CardMastercard, CardAmex, CardOther}

var (
	visaPattern       = regexp.MustCompile(`^4`)
	mastercardPattern = regexp.MustCompile(`^5[1-5]`)
	amexPattern       = regexp.MustCompile(`^3[47]`)
)

// DetectCardType derives the card network from the card number prefix.
func DetectCardType(cardNumber string) CardType {
	switch {
	case visaPattern.MatchString(cardNumber):
		return CardVisa
	case mastercardPattern.MatchString(cardNumber):
		return CardMastercard
	case amexPattern.MatchString(cardNumber):
		return CardAmex
	default:
		return CardOther
	}
}

// TransactionStatus is the outcome of a simulated payment attempt.
type TransactionStatus string

const (
	StatusSuccess TransactionStatus = "Success"
	StatusFailed  TransactionStatus = "Failed"
)

// Transaction is one simulated payment attempt. It is never modified after creation.
type Transaction struct {
	ID             string            `json:"id"`
	Date           time.Time         `json:"date"`
	Amount         decimal.Decimal   `json:"amount"`
	CardNumber     string            `json:"cardNumber"`
	CardType       CardType          `json:"cardType"`
	ExpiryDate     string            `json:"expiryDate"` // MM/YY, not checked against the current date
	Status         TransactionStatus `json:"status"`
	ResponseCode   string            `json:"responseCode"`
	GatewayMessage string            `json:"gatewayMessage"`
	TransactionID  string            `json:"transactionId"` // gateway-facing reference, distinct from ID
}

// IsSuccess reports whether the gateway approved the transaction.
func (t Transaction) IsSuccess() bool {
	return t.Status == StatusSuccess
}

// FailureReason formats the response code and gateway message as "code - message".
func (t Transaction) FailureReason() string {
	return t.ResponseCode + " - " + t.GatewayMessage
}

// MaskedCardNumber hides everything but the last four digits.
func (t Transaction) MaskedCardNumber() string {
	n := len(t.CardNumber)
	if n <= 4 {
		return "**** " + t.CardNumber
	}
	return "**** " + t.CardNumber[n-4:]
}

// GatewayResult is what the (mock) payment gateway returns for one charge.
type GatewayResult struct {
	Status         TransactionStatus
	ResponseCode   string
	GatewayMessage string
	TransactionID  string
}
