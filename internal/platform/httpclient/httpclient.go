package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

const DefaultTimeout = 10 * time.Second

// Tope de lectura por respuesta. Variable para poder bajarlo en tests.
var maxBody int64 = 10 << 20

// ErrBodyTooLarge: la respuesta 2xx excede maxBody y no se entrega recortada.
var ErrBodyTooLarge = errors.New("httpclient: response body too large")

// Client envuelve *http.Client con helpers JSON para hablar con el gateway.
type Client struct {
	HTTP    *http.Client
	BaseURL string // opcional; si se define, DoJSON acepta paths relativos

	// Token se envía como "Authorization: Bearer <token>" si no está vacío.
	Token string
}

// New crea un Client sobre un transport pooled de go-cleanhttp.
// timeout <= 0 deja solo los timeouts propios del transport.
func New(timeout time.Duration) *Client {
	hc := cleanhttp.DefaultPooledClient()
	if timeout > 0 {
		hc.Timeout = timeout
	}
	return &Client{HTTP: hc}
}

// NewWithBaseURL crea un Client con BaseURL + timeout.
func NewWithBaseURL(baseURL string, timeout time.Duration) (*Client, error) {
	c := New(timeout)
	if strings.TrimSpace(baseURL) == "" {
		return c, nil
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c.BaseURL = strings.TrimRight(baseURL, "/")
	return c, nil
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(baseURL string, tr http.RoundTripper) *Client {
	if tr == nil {
		tr = cleanhttp.DefaultPooledTransport()
	}
	return &Client{
		HTTP:    &http.Client{Transport: tr},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// HTTPError representa una respuesta no-2xx del gateway.
// Message sale del campo "message" (o "error") del JSON, si no del texto crudo,
// si no de la línea de status.
type HTTPError struct {
	StatusCode int
	Status     string
	Message    string
	Body       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// AsHTTPError devuelve el *HTTPError envuelto en err, o nil.
func AsHTTPError(err error) *HTTPError {
	var he *HTTPError
	if !errors.As(err, &he) {
		return nil
	}
	return he
}

// DoJSON hace un request JSON.
// - in: body a enviar (nil => sin body)
// - out: destino del JSON de respuesta (nil => se ignora). Body vacío con 2xx es éxito.
func (c *Client) DoJSON(
	ctx context.Context,
	method string,
	pathOrURL string,
	headers map[string]string,
	in any,
	out any,
) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = b
	}

	if headers == nil {
		headers = map[string]string{}
	}
	if _, ok := headers["Accept"]; !ok {
		headers["Accept"] = "application/json"
	}

	raw, _, err := c.do(ctx, method, pathOrURL, headers, body)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

// Send manda in como JSON (nil => sin body) y devuelve el body crudo de la respuesta 2xx.
// No interpreta el body: el llamador decide si necesita leerlo.
func (c *Client) Send(ctx context.Context, method, pathOrURL string, in any) ([]byte, error) {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = b
	}
	raw, _, err := c.do(ctx, method, pathOrURL, map[string]string{"Accept": "application/json"}, body)
	return raw, err
}

// Download trae un recurso binario (p.ej. application/pdf) y su Content-Type.
func (c *Client) Download(ctx context.Context, pathOrURL string) ([]byte, string, error) {
	return c.do(ctx, http.MethodGet, pathOrURL, map[string]string{"Accept": "*/*"}, nil)
}

func (c *Client) do(ctx context.Context, method, pathOrURL string, headers map[string]string, body []byte) ([]byte, string, error) {
	if c == nil || c.HTTP == nil {
		return nil, "", errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return nil, "", err
	}

	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, rdr)
	if err != nil {
		return nil, "", fmt.Errorf("httpclient: new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := strings.TrimSpace(c.Token); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return nil, "", fmt.Errorf("httpclient: read body: %w", err)
	}
	tooLarge := int64(len(raw)) > maxBody
	if tooLarge {
		raw = raw[:maxBody]
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", newHTTPError(resp, raw)
	}
	if tooLarge {
		return nil, "", fmt.Errorf("%w (limit %d bytes)", ErrBodyTooLarge, maxBody)
	}
	return raw, resp.Header.Get("Content-Type"), nil
}

func newHTTPError(resp *http.Response, raw []byte) *HTTPError {
	text := strings.TrimSpace(string(raw))
	e := &HTTPError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       text,
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	switch {
	case text != "" && json.Unmarshal(raw, &payload) == nil && strings.TrimSpace(payload.Message) != "":
		e.Message = strings.TrimSpace(payload.Message)
	case text != "" && strings.TrimSpace(payload.Error) != "":
		e.Message = strings.TrimSpace(payload.Error)
	case text != "":
		e.Message = text
	case strings.TrimSpace(resp.Status) != "":
		e.Message = resp.Status
	default:
		e.Message = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return e
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	if strings.TrimSpace(c.BaseURL) == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}
	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}
