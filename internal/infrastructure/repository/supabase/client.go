package supabase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-emissions/internal/platform/logging"
	"github.com/riskibarqy/football-emissions/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	restPath           = "/rest/v1/"
	defaultTimeout     = 10 * time.Second
	defaultSchema      = "public"
	maxResponseBodyLen = 16 << 20
	opSelect           = "select"
	opDecode           = "decode"
)

type ClientConfig struct {
	BaseURL    string
	APIKey     string
	Schema     string
	Timeout    time.Duration
	HTTPClient *fasthttp.Client
	Logger     *logging.Logger
}

// Client reads tables through the PostgREST endpoint of a Supabase project.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	apiKey  string
	schema  string
	timeout time.Duration
	logger  *logging.Logger
}

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL, err := validateBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid supabase url")
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, crerr.New("supabase api key is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	schema := strings.TrimSpace(cfg.Schema)
	if schema == "" {
		schema = defaultSchema
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "football-emissions",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBodyLen,
		}
	}

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		apiKey:  apiKey,
		schema:  schema,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// filter is one PostgREST query parameter, e.g. season_id=eq.3.
type filter struct {
	key   string
	value string
}

func eq(column string, value string) filter {
	return filter{key: column, value: "eq." + value}
}

func anyOf(conditions ...string) filter {
	return filter{key: "or", value: "(" + strings.Join(conditions, ",") + ")"}
}

// selectRows reads every row of table matching filters into target.
// All failures come back as *usecase.DataSourceError.
func (c *Client) selectRows(ctx context.Context, table string, filters []filter, target any) error {
	if err := ctx.Err(); err != nil {
		return usecase.NewDataSourceError(table, opSelect, err)
	}

	requestURL := c.buildURL(table, filters)
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("supabase.table", table),
			attribute.String("supabase.url", requestURL),
		)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Profile", c.schema)

	if err := c.http.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		c.logger.WarnContext(ctx, "supabase request failed", "table", table, "error", err)
		return usecase.NewDataSourceError(table, opSelect, crerr.Wrapf(err, "request %s", table))
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	if status < 200 || status >= 300 {
		apiErr := decodeAPIError(status, body)
		c.logger.WarnContext(ctx, "supabase returned error status", "table", table, "status", status, "error", apiErr)
		return usecase.NewDataSourceError(table, opSelect, apiErr)
	}

	if err := sonic.Unmarshal(body, target); err != nil {
		return usecase.NewDataSourceError(table, opDecode, crerr.Wrapf(err, "decode %s rows", table))
	}
	return nil
}

func (c *Client) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}
	return deadline
}

func (c *Client) buildURL(table string, filters []filter) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString(restPath)
	_, _ = buf.WriteString(url.PathEscape(table))
	_, _ = buf.WriteString("?select=*")
	for _, f := range filters {
		_ = buf.WriteByte('&')
		_, _ = buf.WriteString(url.QueryEscape(f.key))
		_ = buf.WriteByte('=')
		_, _ = buf.WriteString(url.QueryEscape(f.value))
	}

	return buf.String()
}

// apiError is the PostgREST error body.
type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint"`
}

func (e *apiError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "unexpected response"
	}
	if e.Code != "" {
		return fmt.Sprintf("status=%d code=%s: %s", e.Status, e.Code, msg)
	}
	return fmt.Sprintf("status=%d: %s", e.Status, msg)
}

func decodeAPIError(status int, body []byte) error {
	out := &apiError{Status: status}
	if err := sonic.Unmarshal(body, out); err != nil || strings.TrimSpace(out.Message) == "" {
		out.Message = abbreviate(string(body), 512)
	}
	return crerr.WithStack(out)
}

func validateBaseURL(raw string) (string, error) {
	candidate := strings.TrimRight(strings.TrimSpace(raw), "/")
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", crerr.New("host is required")
	}
	return candidate, nil
}

func abbreviate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}
