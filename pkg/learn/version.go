package learn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// VersionInfo is the Learn server version reported by the public system
// endpoint.
type VersionInfo struct {
	Learn learnVersion `json:"learn"`
}

type learnVersion struct {
	Major int    `json:"major"`
	Minor int    `json:"minor"`
	Patch int    `json:"patch"`
	Build string `json:"build"`
}

func (v *VersionInfo) String() string {
	if v.Learn.Build == "" {
		return fmt.Sprintf("%d.%d.%d", v.Learn.Major, v.Learn.Minor, v.Learn.Patch)
	}

	return fmt.Sprintf("%d.%d.%d (build %s)", v.Learn.Major, v.Learn.Minor, v.Learn.Patch, v.Learn.Build)
}

// SystemVersion fetches the version of the Learn instance the client is
// authenticated against.
func (c *Client) SystemVersion(ctx context.Context) (*VersionInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+versionPath, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token.AccessToken)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp)
	}

	var v VersionInfo
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &v, nil
}
