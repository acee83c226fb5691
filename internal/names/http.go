package names

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/GlebRadaev/gamebank/pkg/clients"
)

type player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HTTPResolver asks the name service at GET {base}/{accountID}.
type HTTPResolver struct {
	base   string
	client clients.HTTPClientI
}

func NewHTTPResolver(base string, client clients.HTTPClientI) *HTTPResolver {
	return &HTTPResolver{
		base:   strings.TrimRight(base, "/"),
		client: client,
	}
}

func (r *HTTPResolver) ResolveName(ctx context.Context, accountID string) (string, error) {
	if accountID == "" {
		return "", ErrPlayerNotFound
	}
	status, body, err := r.client.Get(ctx, r.base+"/"+url.PathEscape(accountID), nil)
	if err != nil {
		return "", fmt.Errorf("name service request failed: %w", err)
	}

	switch status {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusNoContent:
		return "", ErrPlayerNotFound
	default:
		return "", fmt.Errorf("name service returned status %d", status)
	}

	var p player
	if err := json.Unmarshal(body, &p); err != nil {
		return "", fmt.Errorf("failed to parse name service response: %w", err)
	}
	if p.Name == "" {
		return "", ErrPlayerNotFound
	}
	return p.Name, nil
}
