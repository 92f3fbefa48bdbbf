package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return NewGateway(log)
}

func TestGateway_ProcessPayment(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		payer  string
		payee  string
		amount int64
		want   bool
	}{
		{"valid", "alice@pay.com", "org@pay.com", 500, true},
		{"zero amount", "alice@pay.com", "org@pay.com", 0, false},
		{"negative amount", "alice@pay.com", "org@pay.com", -5, false},
		{"no payer", "", "org@pay.com", 500, false},
		{"no payee", "alice@pay.com", " ", 500, false},
		{"same account", "alice@pay.com", "ALICE@pay.com", 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.ProcessPayment(ctx, tt.payer, tt.payee, tt.amount))
		})
	}

	assert.Len(t, g.Transactions(), 1)
	assert.Equal(t, int64(-500), g.Balance("alice@pay.com"))
	assert.Equal(t, int64(500), g.Balance("org@pay.com"))
}

func TestGateway_ProcessRefund_NeedsMatchingPayment(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	assert.False(t, g.ProcessRefund(ctx, "org@pay.com", "alice@pay.com", 500), "nothing was paid")

	require.True(t, g.ProcessPayment(ctx, "alice@pay.com", "org@pay.com", 500))
	assert.False(t, g.ProcessRefund(ctx, "org@pay.com", "alice@pay.com", 400), "amount differs")
	assert.False(t, g.ProcessRefund(ctx, "org@pay.com", "bob@pay.com", 500), "wrong payee")

	assert.True(t, g.ProcessRefund(ctx, "org@pay.com", "alice@pay.com", 500))
	assert.False(t, g.ProcessRefund(ctx, "org@pay.com", "alice@pay.com", 500), "already refunded")

	txs := g.Transactions()
	require.Len(t, txs, 2)
	assert.True(t, txs[0].Refunded)
	assert.Equal(t, KindRefund, txs[1].Kind)
	assert.Zero(t, g.Balance("alice@pay.com"))
	assert.Zero(t, g.Balance("org@pay.com"))
}

func TestGateway_Block(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	require.True(t, g.ProcessPayment(ctx, "alice@pay.com", "org@pay.com", 100))

	g.Block("Org@Pay.com")
	assert.False(t, g.ProcessPayment(ctx, "alice@pay.com", "org@pay.com", 100))
	assert.False(t, g.ProcessRefund(ctx, "org@pay.com", "alice@pay.com", 100))

	g.Unblock("org@pay.com")
	assert.True(t, g.ProcessRefund(ctx, "org@pay.com", "alice@pay.com", 100))
}
