package urban

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Definition is one urban dictionary entry.
type Definition struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Permalink  string `json:"permalink"`
}

type defineResponse struct {
	List []Definition `json:"list"`
}

// Client fetches word definitions from the urban dictionary API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client against the given API base URL
// (e.g. https://api.urbandictionary.com/v0).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Define returns the definitions for a word, most popular first. An unknown
// word yields an empty slice, not an error.
func (c *Client) Define(word string) ([]Definition, error) {
	u := c.baseURL + "/define?term=" + url.QueryEscape(word)

	resp, err := c.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to contact urban dictionary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("urban dictionary returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read urban dictionary response: %w", err)
	}

	var parsed defineResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse urban dictionary response: %w", err)
	}

	return parsed.List, nil
}
