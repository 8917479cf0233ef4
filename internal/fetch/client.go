// Package fetch talks to the DraftFantasy public API: the players stats CSV,
// the league draft picks feed, and the probed live roster endpoints.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/speeddemonreturns/draft-waiver--assistant/internal/store"
)

const DefaultBaseURL = "https://app.draftfantasy.com/api"

// maxErrBody caps how much of an upstream error body ends up in our errors.
const maxErrBody = 512

type Client struct {
	HTTP      *http.Client
	Store     *store.SnapshotStore
	BaseURL   string
	UserAgent string
	CacheTTL  time.Duration
	UseCache  bool
	Log       *logrus.Entry
}

func NewClient(st *store.SnapshotStore, log *logrus.Entry) *Client {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Client{
		HTTP:      &http.Client{Timeout: 20 * time.Second},
		Store:     st,
		BaseURL:   DefaultBaseURL,
		UserAgent: "draft-waiver-assistant/1.0",
		CacheTTL:  10 * time.Minute,
		UseCache:  true,
		Log:       log.WithField("component", "fetch"),
	}
}

// get downloads urlPath and, when a store is attached, caches the body under
// rel. force bypasses the cache. Returns the body and the Content-Type
// (empty for cache hits).
func (c *Client) get(urlPath string, rel string, force bool) ([]byte, string, error) {
	if !force && c.UseCache && c.Store != nil && rel != "" && c.Store.Fresh(rel, c.CacheTTL) {
		b, err := c.Store.Read(rel)
		if err == nil {
			return b, "", nil
		}
		c.Log.WithError(err).WithField("rel", rel).Warn("snapshot read failed, refetching")
	}

	req, err := http.NewRequest(http.MethodGet, c.BaseURL+urlPath, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("GET %s: %w", urlPath, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := body
		if len(snippet) > maxErrBody {
			snippet = snippet[:maxErrBody]
		}
		return nil, "", fmt.Errorf("GET %s failed: %d body=%s", urlPath, resp.StatusCode, string(snippet))
	}

	contentType := resp.Header.Get("Content-Type")
	if c.UseCache && c.Store != nil && rel != "" {
		pretty := strings.Contains(contentType, "application/json")
		if err := c.Store.Write(rel, body, pretty); err != nil {
			c.Log.WithError(err).WithField("rel", rel).Warn("snapshot write failed")
		}
	}

	c.Log.WithFields(logrus.Fields{"path": urlPath, "bytes": len(body)}).Debug("fetched")
	return body, contentType, nil
}
