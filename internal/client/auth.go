package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/session"
)

// Auth handles login. Token refresh and registration stay in the web client;
// this tool only needs a session to read and write the user's own data.
type Auth struct {
	c *Client
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		ID          int64  `json:"id"`
		Email       string `json:"email"`
		UserName    string `json:"userName"`
		AccessToken string `json:"access_token"`
	} `json:"data"`
}

// Login exchanges credentials for a session. The caller decides whether to
// persist it.
func (a *Auth) Login(ctx context.Context, email, password string) (*session.Session, error) {
	var resp loginResponse
	if err := a.c.doJSON(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("login rejected: %s", resp.Message)
	}
	return &session.Session{
		User: session.User{
			ID:       fmt.Sprintf("%d", resp.Data.ID),
			Email:    resp.Data.Email,
			UserName: resp.Data.UserName,
		},
		Token: resp.Data.AccessToken,
	}, nil
}
