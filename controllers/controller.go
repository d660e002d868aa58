package controllers

import (
	"context"
	"time"

	"github.com/vnkhanh/survey-engine/storage"
	"github.com/vnkhanh/survey-engine/store"
	"github.com/vnkhanh/survey-engine/utils"
)

type AuthConfig struct {
	JWTSecret         string
	JWTTTL            time.Duration
	AdminPasswordHash string
	GoogleClientID    string
}

// Controller gom các phụ thuộc mà handler cần.
type Controller struct {
	Store  *store.Store
	Health storage.Pinger
	Auth   AuthConfig

	// VerifyGoogle mặc định là utils.VerifyGoogleIDToken; test có thể thay.
	VerifyGoogle func(ctx context.Context, token, clientID string) (*utils.GoogleIdentity, error)
}

func New(s *store.Store, health storage.Pinger, auth AuthConfig) *Controller {
	return &Controller{
		Store:        s,
		Health:       health,
		Auth:         auth,
		VerifyGoogle: utils.VerifyGoogleIDToken,
	}
}
