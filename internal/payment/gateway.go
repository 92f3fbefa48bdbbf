// Package payment is an in-process payment gateway. It keeps a transaction
// log so refunds can only give back money that was actually paid.
package payment

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type Kind string

const (
	KindPayment Kind = "payment"
	KindRefund  Kind = "refund"
)

type Transaction struct {
	ID            string
	Kind          Kind
	PayerAccount  string
	PayeeAccount  string
	AmountInPence int64
	At            time.Time
	// Refunded is set on a payment once a matching refund went through.
	Refunded bool
}

type Gateway struct {
	mu           sync.Mutex
	transactions []*Transaction
	blocked      map[string]bool
	logger       logger.Logger
}

func NewGateway(logger logger.Logger) *Gateway {
	return &Gateway{
		blocked: make(map[string]bool),
		logger:  logger,
	}
}

// Block makes every payment or refund touching account fail until Unblock.
func (g *Gateway) Block(account string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.blocked[normalise(account)] = true
}

func (g *Gateway) Unblock(account string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.blocked, normalise(account))
}

func (g *Gateway) ProcessPayment(_ context.Context, payerAccount, payeeAccount string, amountInPence int64) bool {
	payer, payee := normalise(payerAccount), normalise(payeeAccount)

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.valid(payer, payee, amountInPence) {
		g.logger.Warn("payment rejected",
			logger.String("payer", payer),
			logger.String("payee", payee),
			logger.Int64("amount_in_pence", amountInPence),
		)
		return false
	}

	g.transactions = append(g.transactions, &Transaction{
		ID:            uuid.New().String(),
		Kind:          KindPayment,
		PayerAccount:  payer,
		PayeeAccount:  payee,
		AmountInPence: amountInPence,
		At:            time.Now().UTC(),
	})

	return true
}

// ProcessRefund sends amountInPence from payerAccount back to payeeAccount.
// It succeeds only when an unrefunded payment of the same amount went the
// other way, and that payment is then marked refunded.
func (g *Gateway) ProcessRefund(_ context.Context, payerAccount, payeeAccount string, amountInPence int64) bool {
	payer, payee := normalise(payerAccount), normalise(payeeAccount)

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.valid(payer, payee, amountInPence) {
		g.logger.Warn("refund rejected",
			logger.String("payer", payer),
			logger.String("payee", payee),
			logger.Int64("amount_in_pence", amountInPence),
		)
		return false
	}

	var original *Transaction
	for _, t := range g.transactions {
		if t.Kind == KindPayment && !t.Refunded &&
			t.PayerAccount == payee && t.PayeeAccount == payer && t.AmountInPence == amountInPence {
			original = t
			break
		}
	}
	if original == nil {
		g.logger.Warn("refund without matching payment",
			logger.String("payer", payer),
			logger.String("payee", payee),
			logger.Int64("amount_in_pence", amountInPence),
		)
		return false
	}

	original.Refunded = true
	g.transactions = append(g.transactions, &Transaction{
		ID:            uuid.New().String(),
		Kind:          KindRefund,
		PayerAccount:  payer,
		PayeeAccount:  payee,
		AmountInPence: amountInPence,
		At:            time.Now().UTC(),
	})

	return true
}

// Transactions returns a copy of the log in the order it was written.
func (g *Gateway) Transactions() []Transaction {
	g.mu.Lock()
	defer g.mu.Unlock()

	res := make([]Transaction, 0, len(g.transactions))
	for _, t := range g.transactions {
		res = append(res, *t)
	}
	return res
}

// Balance is what account received minus what it paid.
func (g *Gateway) Balance(account string) int64 {
	account = normalise(account)

	g.mu.Lock()
	defer g.mu.Unlock()

	var balance int64
	for _, t := range g.transactions {
		if t.PayeeAccount == account {
			balance += t.AmountInPence
		}
		if t.PayerAccount == account {
			balance -= t.AmountInPence
		}
	}
	return balance
}

func (g *Gateway) valid(payer, payee string, amount int64) bool {
	return amount > 0 && payer != "" && payee != "" && payer != payee &&
		!g.blocked[payer] && !g.blocked[payee]
}

func normalise(account string) string {
	return strings.ToLower(strings.TrimSpace(account))
}
