package mailboxapi

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/yellowboat/backoffice/internal/config"
	"github.com/yellowboat/backoffice/internal/logger"
)

// Client provisions mailboxes at the hosting provider. Every failure is
// reported as ok=false; callers treat provisioning as best-effort.
type Client struct {
	baseURL    string
	apiKey     string
	accountID  string
	domain     string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.Mailbox.APIBaseURL,
		apiKey:    cfg.Mailbox.APIKey,
		accountID: cfg.Mailbox.AccountID,
		domain:    cfg.Mailbox.Domain,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Enabled reports whether provisioning is configured at all.
func (c *Client) Enabled() bool {
	return c.baseURL != "" && c.apiKey != "" && c.domain != ""
}

// Domain returns the platform mail domain.
func (c *Client) Domain() string {
	return c.domain
}

type createMailboxRequest struct {
	Domain   string `json:"domain"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// CreateMailbox creates localPart@domain with a generated password.
// Returns ok=false (never an error to the caller's flow) when the
// provider rejects the request or is unreachable.
func (c *Client) CreateMailbox(localPart string) (ok bool, address, password string) {
	if !c.Enabled() {
		return false, "", ""
	}

	address = localPart + "@" + c.domain
	password = generatePassword(16)

	payload, err := json.Marshal(createMailboxRequest{
		Domain:   c.domain,
		Name:     localPart,
		Password: password,
	})
	if err != nil {
		logger.Error("mailbox provisioning: marshal failed", "error", err)
		return false, "", ""
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/v1/mailbox", bytes.NewReader(payload))
	if err != nil {
		logger.Error("mailbox provisioning: request build failed", "error", err)
		return false, "", ""
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.apiKey, c.accountID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("mailbox provisioning: request failed", "error", err, "address", address)
		return false, "", ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("mailbox provisioning: provider rejected request",
			"status", resp.StatusCode, "address", address)
		return false, "", ""
	}

	logger.Info("mailbox provisioned", "address", address)
	return true, address, password
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generatePassword(length int) string {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(fmt.Sprintf("mailboxapi: random source unavailable: %v", err))
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf)
}
