package adapter

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/helper"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const turnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

type CaptchaAdapter struct {
	httpClient *http.Client
	secretKey  string
	verifyURL  string
}

func NewCaptchaAdapter(cfg *config.AppConfig, httpClient *http.Client) *CaptchaAdapter {
	return &CaptchaAdapter{
		httpClient: httpClient,
		secretKey:  cfg.TurnstileSecretKey,
		verifyURL:  turnstileVerifyURL,
	}
}

type turnstileVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Enabled is false when no secret is configured; sign-up then skips the challenge.
func (c *CaptchaAdapter) Enabled() bool {
	return c.secretKey != ""
}

func (c *CaptchaAdapter) Verify(ctx context.Context, token string, ip string) error {
	form := url.Values{
		"secret":   {c.secretKey},
		"response": {token},
	}
	if ip != "" {
		form.Set("remoteip", ip)
	}
	encoded := form.Encode()

	operation := func() (*http.Response, bool, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(encoded))
		if err != nil {
			return nil, false, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpClient.Do(req)
		if helper.ShouldRetryHTTP(resp, err) {
			if resp != nil {
				resp.Body.Close()
			}
			if err == nil {
				err = fmt.Errorf("captcha verify returned status %d", resp.StatusCode)
			}
			return nil, true, err
		}
		return resp, false, nil
	}

	resp, err := helper.RetryWithBackoff(ctx, operation, 4, 500*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to verify captcha: %w", err)
	}
	defer resp.Body.Close()

	var verifyResp turnstileVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verifyResp); err != nil {
		return fmt.Errorf("failed to unmarshal captcha response: %w", err)
	}

	if !verifyResp.Success {
		return fmt.Errorf("captcha verification failed: %v", verifyResp.ErrorCodes)
	}

	return nil
}
