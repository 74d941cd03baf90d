package scraper

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"time"

	"hotsbot/internal/models"
	"hotsbot/pkg/metrics"

	"github.com/go-resty/resty/v2"
)

const (
	pagePlayerSearch = "player_search"
	pageFreeRotation = "free_rotation"
)

type Config struct {
	HotsLogsURL   string        `env:"HOTSLOGS_URL" envDefault:"https://www.hotslogs.com"`
	HeroesFireURL string        `env:"HEROESFIRE_URL" envDefault:"http://www.heroesfire.com"`
	Timeout       time.Duration `env:"TIMEOUT" envDefault:"30s"`
	UserAgent     string        `env:"USER_AGENT" envDefault:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"`
}

// Client fetches the HotsLogs and HeroesFire pages and runs the extractors
// over them. Nothing is cached or retried.
type Client struct {
	http          *resty.Client
	hotsLogsURL   string
	heroesFireURL string
}

func NewClient(cfg *Config) *Client {
	client := resty.New()
	client.SetHeader("user-agent", cfg.UserAgent)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Client{
		http:          client,
		hotsLogsURL:   strings.TrimRight(cfg.HotsLogsURL, "/"),
		heroesFireURL: strings.TrimRight(cfg.HeroesFireURL, "/"),
	}
}

func (c *Client) FetchPlayerSearch(ctx context.Context, name string) ([]models.PlayerRating, error) {
	body, err := c.get(ctx, pagePlayerSearch, c.hotsLogsURL+"/PlayerSearch", map[string]string{"Name": name})
	if err != nil {
		return nil, err
	}
	return ExtractPlayerSearch(bytes.NewReader(body), name)
}

func (c *Client) FetchFreeRotation(ctx context.Context) ([]models.Hero, error) {
	body, err := c.get(ctx, pageFreeRotation, c.heroesFireURL+"/", nil)
	if err != nil {
		return nil, err
	}
	return ExtractFreeRotation(bytes.NewReader(body))
}

func (c *Client) get(ctx context.Context, page, url string, query map[string]string) ([]byte, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(url)
	if err != nil {
		metrics.ScrapeRequests.WithLabelValues(page, "error").Inc()
		return nil, &FetchError{Page: page, URL: url, Err: err}
	}

	metrics.ScrapeRequests.WithLabelValues(page, strconv.Itoa(res.StatusCode())).Inc()
	if res.IsError() {
		return nil, &FetchError{Page: page, URL: url, Status: res.StatusCode()}
	}
	return res.Body(), nil
}
