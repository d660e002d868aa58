package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/survey-engine/middleware"
	"github.com/vnkhanh/survey-engine/utils"
)

type loginReq struct {
	UserID   string `json:"user_id"  binding:"required,min=1"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (ctl *Controller) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}

	if !utils.CheckPassword(ctl.Auth.AdminPasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Sai thông tin đăng nhập"})
		return
	}

	ctl.issueToken(c, req.UserID, "password")
}

type googleLoginReq struct {
	IDToken string `json:"id_token" binding:"required"`
}

// POST /api/auth/google/login
func (ctl *Controller) GoogleLogin(c *gin.Context) {
	var req googleLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}

	id, err := ctl.VerifyGoogle(c.Request.Context(), req.IDToken, ctl.Auth.GoogleClientID)
	if err != nil {
		slog.Debug("Google ID token rejected", "err", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Google token không hợp lệ"})
		return
	}

	ctl.issueToken(c, "google:"+id.Subject, "google")
}

func (ctl *Controller) issueToken(c *gin.Context, userID, provider string) {
	token, err := utils.GenerateToken(ctl.Auth.JWTSecret, userID, provider, ctl.Auth.JWTTTL)
	if err != nil {
		slog.Error("Issue token failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể tạo token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"user_id": userID,
	})
}

// GET /api/me
func (ctl *Controller) Me(c *gin.Context) {
	resp := gin.H{"user_id": middleware.CurrentUserID(c)}
	if v, ok := c.Get(middleware.CtxClaims); ok {
		if claims, ok := v.(*utils.JWTClaims); ok {
			resp["provider"] = claims.Provider
		}
	}
	c.JSON(http.StatusOK, resp)
}
