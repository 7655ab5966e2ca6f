package queue_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tazhibayda/trade-service/internal/queue"
)

func TestNoop(t *testing.T) {
	p := queue.NewNoop()
	require.NoError(t, p.Publish(context.Background(), queue.Exchange, "k", struct{}{}, "rid"))
	require.NoError(t, p.Close())
}

// Against a fresh broker the exchange does not exist yet; publishing
// only works because NewRabbit declares it. A publish to an undeclared
// exchange 404s and closes the channel, which the second publish here
// would surface.
func TestRabbit_DeclaresExchange(t *testing.T) {
	url := os.Getenv("RABBIT_TEST_URL")
	if url == "" {
		t.Skip("RABBIT_TEST_URL not set")
	}

	p, err := queue.NewRabbit(url)
	require.NoError(t, err)
	defer p.Close()

	ctx := context.Background()
	ev := queue.ProductImported{ProductID: "p1", UserID: "u1", ImportedQuantity: 2, Remaining: 3}
	require.NoError(t, p.Publish(ctx, queue.Exchange, "product.imported", ev, "rid-1"))
	require.NoError(t, p.Publish(ctx, queue.Exchange, "product.imported", ev, "rid-2"))
}
