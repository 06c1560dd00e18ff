package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"sealpost/internal/domain"
)

// HTTP talks JSON over HTTP to a sealpost server.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the server at base using hc.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: base, HTTP: hc}
}

// Register publishes the signing public key for clientID.
func (c *HTTP) Register(ctx context.Context, clientID string, key domain.Ed25519Public) error {
	in := domain.RegisterRequest{ClientID: clientID, SigningKey: key}
	return c.post(ctx, "/v1/register", in, nil)
}

// Send posts env for server-side validation and queueing.
func (c *HTTP) Send(ctx context.Context, env domain.Envelope) error {
	return c.post(ctx, "/v1/messages", env, nil)
}

// Receive drains and returns clientID's mailbox.
func (c *HTTP) Receive(ctx context.Context, clientID string) ([]domain.Envelope, error) {
	var out domain.InboxResponse
	if err := c.get(ctx, "/v1/inbox/"+url.PathEscape(clientID), &out); err != nil {
		return nil, err
	}
	return out.Envelopes, nil
}

// LookupKey fetches the registered signing public key for clientID.
func (c *HTTP) LookupKey(ctx context.Context, clientID string) (domain.Ed25519Public, error) {
	var out domain.ClientKeyResponse
	if err := c.get(ctx, "/v1/clients/"+url.PathEscape(clientID), &out); err != nil {
		return domain.Ed25519Public{}, err
	}
	return out.SigningKey, nil
}

// ListClients returns all registered identifiers.
func (c *HTTP) ListClients(ctx context.Context) ([]string, error) {
	var out domain.ClientListResponse
	if err := c.get(ctx, "/v1/clients", &out); err != nil {
		return nil, err
	}
	return out.Clients, nil
}

func (c *HTTP) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, out)
}

func (c *HTTP) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, path, out)
}

func (c *HTTP) do(req *http.Request, path string, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return decodeError(resp, req.Method, path)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// decodeError maps a wire error code back onto the domain taxonomy.
func decodeError(resp *http.Response, method, path string) error {
	var e domain.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Code == "" {
		return fmt.Errorf("server %s %s: %s", method, path, resp.Status)
	}
	if sentinel, ok := codeErrors[e.Code]; ok {
		return fmt.Errorf("%w: %s", sentinel, e.Message)
	}
	return fmt.Errorf("server %s %s: %s (%s)", method, path, e.Code, e.Message)
}

// codeErrors translates wire codes to sentinels. The invalid_envelope code
// deliberately maps to ErrInvalidSignature and nothing finer.
var codeErrors = map[string]error{
	domain.CodeMalformedKey:      domain.ErrMalformedKey,
	domain.CodeMalformedEnvelope: domain.ErrMalformedEnvelope,
	domain.CodeUnknownClient:     domain.ErrUnknownClient,
	domain.CodeUnknownSender:     domain.ErrUnknownSender,
	domain.CodeUnknownRecipient:  domain.ErrUnknownRecipient,
	domain.CodeAlreadyRegistered: domain.ErrAlreadyRegistered,
	domain.CodeDuplicateMessage:  domain.ErrDuplicateMessage,
	domain.CodeInvalidEnvelope:   domain.ErrInvalidSignature,
}

// Compile-time assertion that HTTP implements domain.RelayClient.
var _ domain.RelayClient = (*HTTP)(nil)
