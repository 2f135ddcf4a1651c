package scoring

import (
	"context"
	"encoding/json"
	"fmt"
)

// loginResponse mirrors the auth service's token grant.
type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges operator credentials for a bearer token. How the account
// was provisioned (registration, OTP) is the auth service's concern; this
// client only needs the resulting credential.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	respBody, err := c.post(ctx, "/auth/login", body)
	if err != nil {
		return "", err
	}

	var resp loginResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("no access token returned")
	}

	return resp.AccessToken, nil
}

// Profile is the read-only operator record from /clients/me.
type Profile struct {
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Age     *int    `json:"age,omitempty"`
	Gender  *string `json:"gender,omitempty"`
	Country *string `json:"country,omitempty"`
}

// Me fetches the authenticated operator's profile.
func (c *Client) Me(ctx context.Context) (Profile, error) {
	respBody, err := c.get(ctx, "/clients/me")
	if err != nil {
		return Profile{}, err
	}

	var p Profile
	if err := json.Unmarshal(respBody, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse response: %w", err)
	}

	return p, nil
}
