// Copyright 2026 Zipsea, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/heyitswin/patchkit/pkg/notify"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	webhookURL  = flag.String("webhook", "", "Slack webhook URL (defaults to $SLACK_WEBHOOK_URL)")
	reference   = flag.String("reference", "", "Quote reference number")
	email       = flag.String("email", "", "Customer email address")
	cruise      = flag.String("cruise", "", "Cruise name")
	ship        = flag.String("ship", "", "Ship name")
	departure   = flag.String("departure", "", "Departure date")
	cabin       = flag.String("cabin", "", "Requested cabin type")
	pricingFile = flag.String("pricing-file", "-", "File holding raw pricing data, - for stdin")
	debug       = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	// Parse flags
	flag.Parse()

	// Set up logger
	logLevel := zerolog.InfoLevel
	if *debug {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	// Resolve webhook URL
	url := *webhookURL
	if url == "" {
		url = os.Getenv("SLACK_WEBHOOK_URL")
	}

	client := notify.New(url)
	if !client.Configured() {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println("Please update the webhook URL with your actual Slack webhook URL")
		pterm.Println("   Contact the Zipsea team for the webhook URL for #updates-quote-requests channel")
		os.Exit(1)
	}

	if *reference == "" {
		logger.Fatal().Msg("missing required -reference flag")
	}
	if *email == "" {
		logger.Fatal().Msg("missing required -email flag")
	}

	// Read raw pricing data
	pricing, err := readPricingData(*pricingFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("reading pricing data")
	}

	quote := notify.Quote{
		ReferenceNumber: *reference,
		CustomerEmail:   *email,
		CruiseName:      *cruise,
		ShipName:        *ship,
		DepartureDate:   *departure,
		CabinType:       *cabin,
		RawPricingData:  pricing,
	}

	// Send to Slack
	if !client.Send(ctx, quote) {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println("Failed to send to Slack")
		os.Exit(1)
	}

	pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println("Successfully sent to Slack #updates-quote-requests channel")
	pterm.Printf("   Reference: #%s\n", quote.ReferenceNumber)
	pterm.Printf("   Customer: %s\n", quote.CustomerEmail)
}

// readPricingData loads the raw pricing block from a file, or stdin for "-"
func readPricingData(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Errorf("reading pricing file: %w", err)
	}
	return string(data), nil
}
