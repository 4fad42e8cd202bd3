package hhfetcher

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
)

const sourceName = "headhunter"

// Config - параметры подключения к API HeadHunter
type Config struct {
	BaseURL string
	// HeadHunter отклоняет запросы без осмысленного User-Agent
	UserAgent    string
	RequestDelay time.Duration
}

// HeadHunterFetcherAdapter отвечает за все взаимодействия с API HeadHunter
type HeadHunterFetcherAdapter struct {
	collector *colly.Collector
	baseURL   string
}

// NewHeadHunterFetcherAdapter - конструктор
func NewHeadHunterFetcherAdapter(cfg Config) (*HeadHunterFetcherAdapter, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Hostname() == "" {
		return nil, fmt.Errorf("HeadHunterFetcherAdapter: invalid base url %q: %v", cfg.BaseURL, err)
	}

	opts := []colly.CollectorOption{
		colly.AllowedDomains(u.Hostname()),
		colly.AllowURLRevisit(),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, colly.UserAgent(cfg.UserAgent))
	}
	c := colly.NewCollector(opts...)

	err = c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       cfg.RequestDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("HeadHunterFetcherAdapter: failed to set limit rule: %w", err)
	}

	return &HeadHunterFetcherAdapter{
		collector: c,
		baseURL:   cfg.BaseURL,
	}, nil
}

func (a *HeadHunterFetcherAdapter) SourceName() string {
	return sourceName
}
