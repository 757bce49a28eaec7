package domain

import "errors"

var (
	MessageSuccessWebhook = "payment notification processed"
	MessageFailedWebhook  = "failed to process payment notification"

	ErrPaymentFailed = errors.New("payment gateway rejected the transaction")
)

type (
	PaymentRequest struct {
		OrderID       string
		GrossAmount   int64
		CustomerName  string
		CustomerEmail string
	}

	PaymentResponse struct {
		Token       string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}

	PaymentNotificationRequest struct {
		OrderID           string `json:"order_id" validate:"required"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
