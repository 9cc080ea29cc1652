package collector

import (
	"context"
	"io"
	"time"

	"sjsage522/zenlesscollector/helpers"
	"sjsage522/zenlesscollector/logger"
	apperrors "sjsage522/zenlesscollector/pkg/errors"

	"github.com/PuerkitoBio/goquery"
)

// Options configures a Collector
type Options struct {
	URL           string
	TableSelector string
	Currency      string
	UserAgent     string
	Timeout       time.Duration
}

// Collector fetches the code page and turns its table into active codes
type Collector struct {
	URL           string
	TableSelector string
	rewards       *RewardExtractor
	log           *logger.Logger
	fetchFunc     func(ctx context.Context) (io.Reader, error)
}

// New creates a collector that fetches opts.URL over HTTP
func New(opts Options) *Collector {
	c := &Collector{
		URL:           opts.URL,
		TableSelector: opts.TableSelector,
		rewards:       NewRewardExtractor(opts.Currency),
		log:           logger.ForCollector(),
	}
	fetchOpts := helpers.FetchOptions{
		UserAgent: opts.UserAgent,
		Timeout:   opts.Timeout,
	}
	c.fetchFunc = func(ctx context.Context) (io.Reader, error) {
		return helpers.FetchPage(ctx, c.URL, fetchOpts)
	}
	return c
}

// GetName returns the collector's name for logging
func (c *Collector) GetName() string {
	return "WikiCollector"
}

// Collect fetches the page and returns the active codes as of today.
// A page without the code table yields no codes and no error.
func (c *Collector) Collect(ctx context.Context, today time.Time) ([]RedemptionCode, error) {
	body, err := c.fetchFunc(ctx)
	if err != nil {
		return nil, apperrors.NewNetwork(c.GetName(), "fetch "+c.URL, err)
	}
	return c.Parse(body, today)
}

// Parse extracts the active codes from an HTML document
func (c *Collector) Parse(r io.Reader, today time.Time) ([]RedemptionCode, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, apperrors.NewParsing(c.GetName(), "parse HTML", err)
	}

	rows := ExtractRows(doc, c.TableSelector)
	if rows == nil {
		c.log.Warn().Str("selector", c.TableSelector).Msg("No code table found on page")
		return []RedemptionCode{}, nil
	}

	candidates := c.ParseRows(rows)
	codes := Aggregate(candidates, today)

	c.log.Debug().
		Int("rows", len(rows)).
		Int("candidates", len(candidates)).
		Int("codes", len(codes)).
		Msg("Parsed code table")

	return codes, nil
}

// ParseRows turns raw rows into candidates, skipping rows without a code or reward
func (c *Collector) ParseRows(rows []Row) []Candidate {
	candidates := make([]Candidate, 0, len(rows))
	for _, row := range rows {
		code, ok := MatchCode(row.Code)
		if !ok {
			continue
		}

		reward, ok := c.rewards.Extract(row.Reward)
		if !ok {
			continue
		}

		expiry := ParseExpiry(row.Expiry)
		if expiry.Kind == NoExpiry && row.Expiry != "" && logger.IsDebugEnabled() {
			c.log.Debug().Str("code", code).Str("expiry", row.Expiry).Msg("Treating expiry text as non-expiring")
		}

		candidates = append(candidates, Candidate{
			Code:   code,
			Expiry: expiry,
			Reward: reward,
		})
	}
	return candidates
}
