package utils

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"
)

type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
}

// VerifyGoogleIDToken kiểm tra ID token do Google Sign-In cấp cho clientID.
func VerifyGoogleIDToken(ctx context.Context, token, clientID string) (*GoogleIdentity, error) {
	if clientID == "" {
		return nil, errors.New("GOOGLE_CLIENT_ID không được thiết lập")
	}
	payload, err := idtoken.Validate(ctx, token, clientID)
	if err != nil {
		return nil, err
	}

	id := &GoogleIdentity{Subject: payload.Subject}
	if v, ok := payload.Claims["email"].(string); ok {
		id.Email = v
	}
	if v, ok := payload.Claims["name"].(string); ok {
		id.Name = v
	}
	return id, nil
}
