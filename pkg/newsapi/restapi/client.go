// Package restapi implements newsapi.Client over the backend's JSON REST API.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"newsroom/pkg/newsapi"
	"newsroom/pkg/serrors"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "newsroom/pkg/newsapi/restapi"
	maxBodyBytes        = 4 << 20
	maxTextMessage      = 300
)

var _ newsapi.Client = (*Client)(nil)

type Options struct {
	// BaseURL is the backend root, e.g. "https://api.example.com".
	BaseURL string
	// Timeout bounds every call. Zero keeps the HTTP client's own setting.
	Timeout time.Duration
	// HTTPClient defaults to a client with Timeout.
	HTTPClient *http.Client

	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

type Client struct {
	baseURL  *url.URL
	http     *http.Client
	tracer   trace.Tracer
	duration metric.Float64Histogram
}

func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("base url %q must be absolute", opts.BaseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	mp := opts.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	duration, err := mp.Meter(instrumentationName).Float64Histogram(
		"newsapi.request.duration",
		metric.WithDescription("Duration of calls to the news backend."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create duration histogram")
	}

	return &Client{
		baseURL:  base,
		http:     httpClient,
		tracer:   tp.Tracer(instrumentationName),
		duration: duration,
	}, nil
}

// call describes one backend request.
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// do performs c and hands the successful response body to decode. Any
// non-2xx status becomes a classified newsapi error.
func (cl *Client) do(ctx context.Context, c call, decode func(body []byte) error) (err error) {
	start := time.Now()
	status := serrors.StatusNetwork

	ctx, span := cl.tracer.Start(ctx, "newsapi."+c.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", c.method),
			attribute.String("url.path", c.path),
		))
	defer func() {
		cl.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("operation", c.op),
			attribute.Int("status", status),
		))
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, c.op+" failed")
		}
		span.End()
	}()

	req, err := cl.newRequest(ctx, c)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "%s", newsapi.DefaultErrorMessage)
	}

	resp, err := cl.http.Do(req)
	if err != nil {
		return newsapi.NewError(c.op, serrors.StatusNetwork, "", errors.Wrap(err, "send request"))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return newsapi.NewError(c.op, serrors.StatusNetwork, "", errors.Wrap(err, "read response"))
	}
	status = resp.StatusCode

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return newsapi.NewError(c.op, status, errorMessage(body, resp.Header.Get("Content-Type")), nil)
	}

	if decode == nil {
		return nil
	}
	if err := decode(body); err != nil {
		return serrors.Wrap(serrors.ErrInternal, errors.Wrapf(err, "decode %s response", c.op),
			"%s", newsapi.DefaultErrorMessage)
	}

	return nil
}

func (cl *Client) newRequest(ctx context.Context, c call) (*http.Request, error) {
	u := cl.baseURL.JoinPath(c.path)
	if len(c.query) > 0 {
		u.RawQuery = c.query.Encode()
	}

	var body io.Reader
	if c.body != nil {
		buf, err := json.Marshal(c.body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request")
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := newsapi.TokenFrom(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// errorMessage extracts the user-facing message of an error response: the
// "message" field of an object, a bare JSON string, or a short plain-text body.
func errorMessage(body []byte, contentType string) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	d := jx.DecodeBytes(body)
	switch d.Next() {
	case jx.Object:
		var msg string
		if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			if string(key) != "message" || d.Next() != jx.String {
				return d.Skip()
			}
			s, err := d.Str()
			msg = s

			return err
		}); err != nil {
			return ""
		}

		return msg
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return ""
		}

		return s
	case jx.Invalid:
		if !strings.HasPrefix(contentType, "text/plain") || len(body) > maxTextMessage {
			return ""
		}

		return string(body)
	default:
		return ""
	}
}

func pageQuery(page, pageSize int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	return q
}

// decodeJSON returns a decode func unmarshalling into out. An empty body or
// JSON null leaves out untouched.
func decodeJSON(out any) func([]byte) error {
	return func(body []byte) error {
		if isEmpty(body) {
			return nil
		}

		return json.Unmarshal(body, out)
	}
}

func isEmpty(body []byte) bool {
	body = bytes.TrimSpace(body)

	return len(body) == 0 || jx.DecodeBytes(body).Next() == jx.Null
}
