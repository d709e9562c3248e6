package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"treehouse/libs"
	"treehouse/models"
	"treehouse/utils"
)

var (
	ErrInvalidOrderPayload  = errors.New("missing required fields")
	ErrWebhookNotConfigured = errors.New("ZAPIER_WEBHOOK_URL environment variable is not set")
	ErrWebhookRejected      = errors.New("webhook rejected order")
)

type webhookPoster interface {
	PostJSON(ctx context.Context, url string, body interface{}) error
}

// RelayService forwards validated orders to the restaurant webhook. It keeps
// no state between calls and makes exactly one attempt per order.
type RelayService struct {
	webhookURL func() string
	client     webhookPoster
	restaurant string
}

func NewRelayService(webhookURL func() string, client webhookPoster, restaurant string) *RelayService {
	return &RelayService{
		webhookURL: webhookURL,
		client:     client,
		restaurant: restaurant,
	}
}

// Validate is a shape check only: items must be a list and totalItems must
// be present and truthy.
func (s *RelayService) Validate(req *models.RelayRequest) error {
	if !utils.IsJSONArray(req.Items) || !utils.IsTruthy(req.TotalItems) {
		return ErrInvalidOrderPayload
	}
	return nil
}

func (s *RelayService) Relay(ctx context.Context, req *models.RelayRequest) error {
	if err := s.Validate(req); err != nil {
		return err
	}

	url := s.webhookURL()
	if url == "" {
		log.Println("ZAPIER_WEBHOOK_URL environment variable is not set")
		return ErrWebhookNotConfigured
	}

	payload := models.WebhookPayload{
		Items:          req.Items,
		TotalItems:     req.TotalItems,
		OrderTimestamp: req.Timestamp,
		Restaurant:     s.restaurant,
	}

	if err := s.client.PostJSON(ctx, url, payload); err != nil {
		var statusErr *libs.StatusError
		if errors.As(err, &statusErr) {
			log.Printf("Failed to send order to webhook: %v", err)
			return fmt.Errorf("%w: %v", ErrWebhookRejected, err)
		}
		return fmt.Errorf("failed to reach webhook: %w", err)
	}

	log.Println("Order forwarded to webhook")
	return nil
}
