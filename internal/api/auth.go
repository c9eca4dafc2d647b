package api

import (
	"context"
	"net/http"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
)

// Register creates a new account; the backend mails an OTP for verification
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for the user and a token pair
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyOTP confirms the one-time code mailed at registration
func (c *Client) VerifyOTP(ctx context.Context, email, code string) error {
	req := models.OTPRequest{Email: email, Code: code}
	return c.do(ctx, http.MethodPost, "/auth/otp/verify", "", req, nil)
}

// ResendOTP requests a fresh one-time code
func (c *Client) ResendOTP(ctx context.Context, email string) error {
	req := models.OTPRequest{Email: email}
	return c.do(ctx, http.MethodPost, "/auth/otp/resend", "", req, nil)
}

// RefreshToken exchanges a refresh token for a new token pair
func (c *Client) RefreshToken(ctx context.Context, refresh string) (*models.TokenPair, error) {
	var pair models.TokenPair
	req := map[string]string{"refresh": refresh}
	if err := c.do(ctx, http.MethodPost, "/auth/token/refresh", "", req, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// RequestPasswordReset starts the reset flow by mailing a code
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	req := models.OTPRequest{Email: email}
	return c.do(ctx, http.MethodPost, "/auth/password-reset/request", "", req, nil)
}

// VerifyPasswordReset checks the mailed reset code
func (c *Client) VerifyPasswordReset(ctx context.Context, email, code string) error {
	req := models.OTPRequest{Email: email, Code: code}
	return c.do(ctx, http.MethodPost, "/auth/password-reset/verify", "", req, nil)
}

// ConfirmPasswordReset sets the new password for a verified reset
func (c *Client) ConfirmPasswordReset(ctx context.Context, req models.PasswordResetConfirm) error {
	return c.do(ctx, http.MethodPost, "/auth/password-reset/confirm", "", req, nil)
}
