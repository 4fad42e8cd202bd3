package superjobfetcher

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
)

const sourceName = "superjob"

// Config - параметры подключения к API SuperJob
type Config struct {
	BaseURL string
	// APIKey передается в заголовке X-Api-App-Id
	APIKey       string
	UserAgent    string
	RequestDelay time.Duration
}

// SuperJobFetcherAdapter отвечает за все взаимодействия с API SuperJob
type SuperJobFetcherAdapter struct {
	// родительский коллектор, который разделяет лимиты
	collector *colly.Collector
	baseURL   string
	apiKey    string
}

// NewSuperJobFetcherAdapter - конструктор
func NewSuperJobFetcherAdapter(cfg Config) (*SuperJobFetcherAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("SuperJobFetcherAdapter: api key is required")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Hostname() == "" {
		return nil, fmt.Errorf("SuperJobFetcherAdapter: invalid base url %q: %v", cfg.BaseURL, err)
	}

	opts := []colly.CollectorOption{
		colly.AllowedDomains(u.Hostname()),
		colly.AllowURLRevisit(),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, colly.UserAgent(cfg.UserAgent))
	}
	c := colly.NewCollector(opts...)

	// Эти правила будут наследоваться всеми клонами коллектора
	err = c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       cfg.RequestDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("SuperJobFetcherAdapter: failed to set limit rule: %w", err)
	}

	return &SuperJobFetcherAdapter{
		collector: c,
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
	}, nil
}

func (a *SuperJobFetcherAdapter) SourceName() string {
	return sourceName
}
