package aiimage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/config"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/enums"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
)

// GenerateRequest asks the collaborator to restyle a flattened ball preview
// under a lighting condition and camera angle.
type GenerateRequest struct {
	BaseImage string          `json:"base_image"`
	Lighting  enums.Lighting  `json:"lighting"`
	Angle     enums.ViewAngle `json:"angle"`
}

// GenerateResponse carries the generated preview as a data URI.
type GenerateResponse struct {
	PreviewImage string `json:"preview_image"`
}

// Client talks to the preview generation collaborator. The collaborator is
// slow and occasionally unavailable; every call is bounded by the configured
// timeout and failures surface as DEPENDENCY errors so the storefront can
// keep the flat composite on screen.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg config.AIConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("ai image client requires a base url")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
	}, nil
}

// Generate requests a styled preview. It is only invoked on explicit user
// action, never as part of the regular composite refresh.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if req.BaseImage == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "base_image is required")
	}
	if !req.Lighting.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid lighting %q", req.Lighting))
	}
	if !req.Angle.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid view angle %q", req.Angle))
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode generation request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build generation request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "preview generation unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read generation response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("preview generation failed with status %d", resp.StatusCode))
	}

	var out GenerateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode generation response")
	}
	if out.PreviewImage == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "generation response carried no preview image")
	}
	return &out, nil
}
