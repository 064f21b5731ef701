package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/inkwell/internal/client/models"
)

type userPayload struct {
	User *models.User `json:"user"`
}

func (c *HTTPClient) Signup(ctx context.Context, data models.SignupData) error {
	if data.Preferences == nil {
		data.Preferences = []string{}
	}
	return c.doJSON(ctx, http.MethodPost, c.endpoint(nil, "auth", "signup"), data, nil)
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, req models.OTPVerification) (*models.User, error) {
	return c.userCall(ctx, http.MethodPost, c.endpoint(nil, "auth", "verify-otp"), req)
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	return c.userCall(ctx, http.MethodPost, c.endpoint(nil, "auth", "login"), creds)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, c.endpoint(nil, "auth", "logout"), nil, nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	return c.userCall(ctx, http.MethodPut, c.endpoint(nil, "auth", "update-profile"), upd)
}

func (c *HTTPClient) userCall(ctx context.Context, method, endpoint string, in any) (*models.User, error) {
	var out userPayload
	if err := c.doJSON(ctx, method, endpoint, in, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, unexpectedError(errMissingPayload)
	}
	return out.User, nil
}
