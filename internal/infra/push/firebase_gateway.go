// Package push implements the push-messaging gateway on Firebase Cloud Messaging.
package push

import (
	"context"
	"fmt"

	"mandi/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseGateway struct {
	client *messaging.Client
}

// NewFirebaseGateway creates a new FCM-backed push gateway instance
func NewFirebaseGateway(ctx context.Context, credentialsPath string) (service.PushGateway, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseGateway{
		client: client,
	}, nil
}

// Send delivers a push notification to a single device token.
func (g *firebaseGateway) Send(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := g.client.Send(ctx, message)
	if err != nil {
		return "", classifySendError(token, err)
	}

	return messageID, nil
}

// SendMulticast fans one message out to multiple device tokens (max 500 per request).
// Per-token failures land in the result, not in the returned error.
func (g *firebaseGateway) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (*service.BatchResult, error) {
	if len(tokens) == 0 {
		return &service.BatchResult{}, nil
	}

	// Firebase limits to 500 tokens per request
	if len(tokens) > service.MulticastLimit {
		return nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MulticastLimit)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := g.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	result := &service.BatchResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Responses:    make([]service.SendResponse, 0, len(response.Responses)),
	}

	for idx, sendResponse := range response.Responses {
		resp := service.SendResponse{
			Token:     tokens[idx],
			MessageID: sendResponse.MessageID,
		}
		if sendResponse.Error != nil {
			resp.Err = classifySendError(tokens[idx], sendResponse.Error)
		}
		result.Responses = append(result.Responses, resp)
	}

	return result, nil
}

// classifySendError maps FCM error categories onto delivery error kinds so
// the dispatch pipeline can decide between token eviction and retry.
func classifySendError(token string, err error) error {
	kind := service.DeliveryOther

	switch {
	case messaging.IsUnregistered(err), messaging.IsInvalidArgument(err):
		kind = service.DeliveryInvalidDestination
	case messaging.IsUnavailable(err), messaging.IsInternal(err), messaging.IsQuotaExceeded(err):
		kind = service.DeliveryTransient
	}

	return &service.DeliveryError{
		Kind:  kind,
		Token: token,
		Err:   err,
	}
}
