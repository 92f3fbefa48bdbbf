package ports

import "context"

// PaymentGateway moves money between payment accounts. Calls block until the
// gateway answers and are never retried by the caller.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, payerAccount, payeeAccount string, amountInPence int64) bool
	ProcessRefund(ctx context.Context, payerAccount, payeeAccount string, amountInPence int64) bool
}
