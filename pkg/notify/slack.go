package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// 🔗 PlaceholderWebhookURL is the unconfigured default. Sending is refused
// until it is replaced with a real webhook URL.
const PlaceholderWebhookURL = "https://hooks.slack.com/services/YOUR_WEBHOOK_URL_HERE"

// 📋 Quote holds the pricing data extracted for a single quote request
type Quote struct {
	ReferenceNumber string // Quote reference number
	CustomerEmail   string // Customer's email address
	CruiseName      string // Name of the cruise
	ShipName        string // Name of the ship
	DepartureDate   string // Departure date
	CabinType       string // Requested cabin type
	RawPricingData  string // Raw pricing data extracted from the booking system
}

// 📢 Client delivers quote pricing data to the #updates-quote-requests channel
type Client struct {
	webhookURL string
	httpClient *http.Client
}

// ⚙️ Option configures a Client
type Option func(*Client)

// 🔧 WithHTTPClient overrides the default HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// 🏭 New creates a new Slack webhook client
func New(webhookURL string, opts ...Option) *Client {
	c := &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// 🔍 Configured reports whether a real webhook URL has been set
func (c *Client) Configured() bool {
	return c.webhookURL != "" && c.webhookURL != PlaceholderWebhookURL
}

// 📤 Send delivers the quote to Slack. It returns true on HTTP 200 and false
// on any failure; delivery problems are logged, never propagated.
func (c *Client) Send(ctx context.Context, quote Quote) bool {
	logger := zerolog.Ctx(ctx)

	body, err := json.Marshal(buildPayload(quote, time.Now().UTC()))
	if err != nil {
		logger.Error().Err(err).Msg("marshaling webhook payload")
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		logger.Error().Err(err).Msg("creating webhook request")
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("sending webhook request")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		logger.Warn().
			Int("status_code", resp.StatusCode).
			Str("response", string(respBody)).
			Msg("webhook delivery rejected")
		return false
	}

	logger.Debug().
		Str("reference", quote.ReferenceNumber).
		Str("customer", quote.CustomerEmail).
		Msg("webhook delivered")
	return true
}

// 🧱 Block Kit payload types
type blockText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type block struct {
	Type     string      `json:"type"`
	Text     *blockText  `json:"text,omitempty"`
	Elements []blockText `json:"elements,omitempty"`
}

type webhookPayload struct {
	Text   string  `json:"text"`
	Blocks []block `json:"blocks"`
}

// 🧩 buildPayload assembles the Block Kit message for a quote
func buildPayload(q Quote, now time.Time) webhookPayload {
	headerText := fmt.Sprintf("*New Quote Pricing Data*\nReference: #%s\nCustomer: %s",
		q.ReferenceNumber, q.CustomerEmail)

	fullData := fmt.Sprintf(`Reference #: %s
Customer: %s
Cruise: %s
Ship: %s
Departure: %s
Cabin Type: %s
Timestamp: %s

--- PRICING DATA ---
%s
`, q.ReferenceNumber, q.CustomerEmail, q.CruiseName, q.ShipName,
		q.DepartureDate, q.CabinType, now.Format(time.RFC3339), q.RawPricingData)

	return webhookPayload{
		Text: fmt.Sprintf("New Quote Pricing Data - Ref #%s", q.ReferenceNumber),
		Blocks: []block{
			{
				Type: "header",
				Text: &blockText{
					Type: "plain_text",
					Text: fmt.Sprintf("📋 Quote Pricing - #%s", q.ReferenceNumber),
				},
			},
			{
				Type: "section",
				Text: &blockText{
					Type: "mrkdwn",
					Text: headerText,
				},
			},
			{
				Type: "divider",
			},
			{
				Type: "section",
				Text: &blockText{
					Type: "mrkdwn",
					Text: fmt.Sprintf("```%s```", fullData),
				},
			},
			{
				Type: "context",
				Elements: []blockText{
					{
						Type: "mrkdwn",
						Text: fmt.Sprintf("Sent at %s UTC", now.Format("2006-01-02 15:04:05")),
					},
				},
			},
		},
	}
}
