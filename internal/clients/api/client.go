package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/gastos-client/internal/entity/expense"
	"max.ks1230/gastos-client/internal/logger"
)

const (
	rootPath         = "/"
	healthPath       = "/health"
	categoriesPath   = "/categorias"
	paymentTypesPath = "/tipos-pagamento"
	expensesPath     = "/gastos"
	monthlyPath      = "/relatorio/mensal"
	annualPath       = "/relatorio/anual"

	contentType = "application/json"
)

type config interface {
	BaseURL() string
	Timeout() time.Duration
}

// Client talks to the expense backend over REST/JSON.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg config) *Client {
	return &Client{
		baseURL: cfg.BaseURL(),
		http:    &http.Client{Timeout: cfg.Timeout()},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping succeeds when GET / answers with a 2xx status.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, rootPath, nil, nil)
}

func (c *Client) Health(ctx context.Context) (health expense.Health, err error) {
	err = c.do(ctx, http.MethodGet, healthPath, nil, &health)
	return health, err
}

// do sends body (if any) as JSON and decodes a 2xx response into out (if any).
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) (err error) {
	op := method + " " + path

	span, ctx := opentracing.StartSpanFromContext(ctx, "api "+method)
	defer span.Finish()
	ext.HTTPMethod.Set(span, method)
	ext.HTTPUrl.Set(span, c.baseURL+path)

	start := time.Now()
	status := 0
	defer func() {
		observeRequest(method, routeOf(path), status, time.Since(start))
		if err != nil {
			ext.Error.Set(span, true)
		}
	}()

	var reader io.Reader
	if body != nil {
		raw, mErr := json.Marshal(body)
		if mErr != nil {
			return errors.Wrap(mErr, "marshalling request")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", contentType)
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer res.Body.Close()
	status = res.StatusCode
	ext.HTTPStatusCode.Set(span, uint16(status))

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return &TransportError{Op: op, Err: errors.Wrap(err, "reading response")}
	}

	if status < 200 || status > 299 {
		se := &StatusError{Op: op, Status: status, Detail: parseDetail(raw)}
		logger.Debug("backend error response", zap.String("op", op), zap.Int("status", status), zap.ByteString("body", raw))
		return se
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "unmarshalling %s response", op)
	}
	return nil
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
