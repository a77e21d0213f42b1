// Usage Challenge Client Example
//
// A minimal client that survives every level of the challenge: it retries
// injected faults, tolerates missing fields and shuffled keys, normalizes
// the three timestamp formats and decodes oversized pages as a stream.
//
// Usage:
//   export CHALLENGE_BASE_URL="http://localhost:8000"
//   go run main.go

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"strings"
	"time"
)

// Usage is a normalized usage record.
type Usage struct {
	UUID      string
	FullName  string
	Email     string
	Hostname  string
	UsageDate time.Time
	UsageTime time.Duration
	HasImage  bool
}

type rawUsage struct {
	UUID    string `json:"uuid"`
	Account struct {
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		FullName       string `json:"full_name"`
		Email          string `json:"email"`
		ProfilePicture string `json:"profile_picture"`
	} `json:"account"`
	Device struct {
		Hostname string `json:"hostname"`
	} `json:"device"`
	UsageDate json.RawMessage `json:"usage_date"`
	UsageTime *int64          `json:"usage_time"`
}

func main() {
	baseURL := os.Getenv("CHALLENGE_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	client := &http.Client{Timeout: 5 * time.Minute}

	for page := 0; ; page += 10 {
		count, done, err := fetchPage(client, fmt.Sprintf("%s/usage/%d", baseURL, page))
		if err != nil {
			log.Fatalf("page %d: %v", page, err)
		}
		if done {
			log.Printf("page %d: challenge complete", page)
			return
		}
		log.Printf("page %d: %d usages", page, count)
	}
}

// fetchPage retries injected faults with exponential backoff.
func fetchPage(client *http.Client, url string) (int, bool, error) {
	for attempt := 0; attempt < 10; attempt++ {
		resp, err := client.Get(url)
		if err != nil {
			return 0, false, err
		}

		switch {
		case resp.StatusCode == http.StatusTeapot:
			resp.Body.Close()
			return 0, true, nil
		case resp.StatusCode == http.StatusOK:
			count, err := decodePage(resp)
			resp.Body.Close()
			return count, false, err
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			resp.Body.Close()
			wait := time.Duration(math.Pow(2, float64(attempt))) * 100 * time.Millisecond
			log.Printf("%s: status %d, retrying in %s", url, resp.StatusCode, wait)
			time.Sleep(wait)
		default:
			resp.Body.Close()
			return 0, false, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
	}
	return 0, false, errors.New("too many failed attempts")
}

// decodePage walks {"level": N, "usages": [...]} one record at a time.
func decodePage(resp *http.Response) (int, error) {
	dec := json.NewDecoder(resp.Body)
	if _, err := dec.Token(); err != nil {
		return 0, err
	}

	count := 0
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return count, err
		}
		if key != "usages" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return count, err
			}
			continue
		}

		if _, err := dec.Token(); err != nil {
			return count, err
		}
		for dec.More() {
			var raw rawUsage
			if err := dec.Decode(&raw); err != nil {
				return count, err
			}
			if _, err := normalize(raw); err != nil {
				return count, fmt.Errorf("usage %d: %w", count, err)
			}
			count++
		}
		if _, err := dec.Token(); err != nil {
			return count, err
		}
	}
	return count, nil
}

func normalize(raw rawUsage) (Usage, error) {
	u := Usage{
		UUID:     raw.UUID,
		FullName: raw.Account.FullName,
		Email:    raw.Account.Email,
		Hostname: raw.Device.Hostname,
		HasImage: raw.Account.ProfilePicture != "",
	}
	if u.FullName == "" {
		u.FullName = strings.TrimSpace(raw.Account.FirstName + " " + raw.Account.LastName)
	}
	if raw.UsageTime != nil {
		u.UsageTime = time.Duration(*raw.UsageTime) * time.Millisecond
	}

	date, err := parseTimestamp(raw.UsageDate)
	if err != nil {
		return u, err
	}
	u.UsageDate = date
	return u, nil
}

// parseTimestamp accepts RFC 3339 text, RFC 2822 text or Unix epoch seconds.
func parseTimestamp(raw json.RawMessage) (time.Time, error) {
	if len(raw) == 0 {
		return time.Time{}, nil
	}

	var epoch int64
	if err := json.Unmarshal(raw, &epoch); err == nil {
		return time.Unix(epoch, 0).UTC(), nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return time.Time{}, err
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC1123Z, "Mon, 2 Jan 2006 15:04:05 -0700"} {
		if t, err := time.Parse(layout, text); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", text)
}
