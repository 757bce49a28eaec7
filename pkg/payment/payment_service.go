package payment

import (
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	"pawplate/domain"
	"pawplate/internal/utils"
)

type (
	PaymentService interface {
		CreateTransaction(req domain.PaymentRequest) (domain.PaymentResponse, error)
		IsTransactionPaid(orderID string) (bool, error)
	}

	paymentService struct {
		snapClient snap.Client
		coreClient coreapi.Client
	}
)

func NewPaymentService() PaymentService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	serverKey := utils.GetConfig("SERVER_KEY")

	var snapClient snap.Client
	snapClient.New(serverKey, env)

	var coreClient coreapi.Client
	coreClient.New(serverKey, env)

	return &paymentService{
		snapClient: snapClient,
		coreClient: coreClient,
	}
}

func (s *paymentService) CreateTransaction(req domain.PaymentRequest) (domain.PaymentResponse, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.GrossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
		},
	}

	resp, err := s.snapClient.CreateTransaction(snapReq)
	if err != nil {
		return domain.PaymentResponse{}, domain.ErrPaymentFailed
	}

	return domain.PaymentResponse{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// IsTransactionPaid re-checks the transaction against the gateway instead
// of trusting the webhook payload.
func (s *paymentService) IsTransactionPaid(orderID string) (bool, error) {
	resp, err := s.coreClient.CheckTransaction(orderID)
	if err != nil {
		return false, domain.ErrPaymentFailed
	}

	switch resp.TransactionStatus {
	case "settlement":
		return true, nil
	case "capture":
		return resp.FraudStatus == "accept", nil
	}
	return false, nil
}
