package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"numconv/internal/domain"
)

// HTTP talks to a remote numconv server.
type HTTP struct {
	Base string
	HTTP *http.Client
}

func NewHTTP(base string, httpClient *http.Client) *HTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTP{Base: base, HTTP: httpClient}
}

// Convert posts req to /convert and returns the result envelope. The error
// return covers transport problems only; conversion failures arrive inside
// the envelope.
func (c *HTTP) Convert(req domain.ConversionRequest) (domain.ConversionResult, error) {
	var out domain.ConversionResult
	if err := c.post("/convert", req, &out); err != nil {
		return domain.ConversionResult{}, err
	}
	return out, nil
}

func (c *HTTP) post(path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("numconv post %s: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

var _ domain.Client = (*HTTP)(nil)
