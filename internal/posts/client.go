package posts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"postview/internal/domain"
)

// StatusCoder is an interface that ErrUnexpectedStatusCode implements.
type StatusCoder interface {
	StatusCode() int
}

// ErrGetStatusCode gets the status code from err, or returns orCode if it
// can't get any.
func ErrGetStatusCode(err error, orCode int) int {
	var scode StatusCoder
	if errors.As(err, &scode) {
		return scode.StatusCode()
	}
	return orCode
}

// ErrUnexpectedStatusCode is returned for any response outside 2xx.
type ErrUnexpectedStatusCode struct {
	Code int
	Body string
}

func (err ErrUnexpectedStatusCode) StatusCode() int {
	return err.Code
}

func (err ErrUnexpectedStatusCode) Error() string {
	var errstr = fmt.Sprintf("unexpected status code %d", err.Code)
	if err.Body != "" {
		errstr += ", body: " + err.Body
	}
	return errstr
}

// Client fetches the posts list from a single fixed endpoint.
type Client struct {
	http.Client
	endpoint *url.URL
}

// NewClient makes a new client for endpoint. A zero timeout keeps the
// transport default.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse endpoint URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("endpoint %q must be an absolute URL", endpoint)
	}

	return &Client{
		Client:   http.Client{Timeout: timeout},
		endpoint: u,
	}, nil
}

// Endpoint returns the stringified endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Do sends req and turns any non-2xx response into ErrUnexpectedStatusCode.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	r, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}

	if r.StatusCode < 200 || r.StatusCode > 299 {
		defer r.Body.Close()

		var unexp = ErrUnexpectedStatusCode{Code: r.StatusCode}

		b, err := io.ReadAll(io.LimitReader(r.Body, 512))
		if err == nil {
			if len(b) > 100 {
				unexp.Body = string(b[:97]) + "..."
			} else {
				unexp.Body = string(b)
			}
		}

		return nil, unexp
	}

	return r, nil
}

// DoJSON sends req and decodes the body into resp.
func (c *Client) DoJSON(req *http.Request, resp interface{}) error {
	q, err := c.Do(req)
	if err != nil {
		return err
	}
	defer q.Body.Close()

	dec := json.NewDecoder(q.Body)
	if err := dec.Decode(resp); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	// The body must hold exactly one JSON value
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}

// FetchPosts issues one GET to the endpoint. No body, headers or auth.
func (c *Client) FetchPosts(ctx context.Context) ([]domain.Post, error) {
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	var posts []domain.Post
	if err := c.DoJSON(r, &posts); err != nil {
		return nil, errors.Wrap(err, "failed to fetch posts")
	}

	return posts, nil
}
