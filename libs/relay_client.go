package libs

import (
	"context"
	"treehouse/models"
)

// RelayClient posts cart snapshots to the order relay endpoint.
type RelayClient struct {
	url    string
	client *JSONClient
}

func NewRelayClient(url string, client *JSONClient) *RelayClient {
	return &RelayClient{url: url, client: client}
}

func (c *RelayClient) SubmitOrder(ctx context.Context, payload *models.OrderPayload) error {
	return c.client.PostJSON(ctx, c.url, payload)
}
