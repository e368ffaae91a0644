package agendaapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"spkio/internal/domain"
)

// Source fetches agenda snapshots from the conference backend's REST
// layer. Each fetch returns the complete current list; callers replace
// their previous copy wholesale.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "agendaapi"),
	}
}

// FetchTalks returns every talk with its speaker embedded.
func (s *Source) FetchTalks(ctx context.Context) ([]domain.Talk, error) {
	query := url.Values{
		"select": {"*,speaker:speakers(*)"},
		"order":  {"time"},
	}

	var records []talkRecord
	if err := s.fetch(ctx, "/rest/v1/talks", query, &records); err != nil {
		return nil, fmt.Errorf("fetch talks: %w", err)
	}

	return s.transformTalks(records), nil
}

// FetchSpeakers returns the speaker directory.
func (s *Source) FetchSpeakers(ctx context.Context) ([]domain.Speaker, error) {
	query := url.Values{
		"select": {"*"},
	}

	var records []speakerRecord
	if err := s.fetch(ctx, "/rest/v1/speakers", query, &records); err != nil {
		return nil, fmt.Errorf("fetch speakers: %w", err)
	}

	speakers := make([]domain.Speaker, 0, len(records))
	for _, rec := range records {
		if rec.ID == "" || rec.Name == "" {
			s.logger.Warn("dropping malformed speaker record", "speaker_id", rec.ID)
			continue
		}
		speakers = append(speakers, domain.Speaker{
			ID:    rec.ID,
			Name:  rec.Name,
			Photo: rec.Photo,
		})
	}
	return speakers, nil
}

func (s *Source) fetch(ctx context.Context, path string, query url.Values, out any) error {
	requestURL := s.baseURL + path + "?" + query.Encode()

	var err error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err = s.doRequest(ctx, requestURL, out)
		if err == nil {
			return nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, requestURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("apikey", s.apiKey)
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transformTalks(records []talkRecord) []domain.Talk {
	talks := make([]domain.Talk, 0, len(records))

	for _, rec := range records {
		talk := domain.Talk{
			ID:          rec.ID,
			Day:         rec.Day,
			Time:        rec.Time,
			Title:       rec.Title,
			Description: rec.Description,
			Site:        rec.Site,
			Link:        rec.Link,
		}

		if rec.ID == "" || rec.Title == "" {
			// kept so the flat view stays complete; aggregation
			// leaves these out of the day buckets
			s.logger.Warn("malformed talk record",
				"talk_id", rec.ID,
				"day", rec.Day,
			)
		}

		if rec.Speaker != nil && rec.Speaker.ID != "" {
			talk.Speaker = &domain.Speaker{
				ID:    rec.Speaker.ID,
				Name:  rec.Speaker.Name,
				Photo: rec.Speaker.Photo,
			}
		}

		talks = append(talks, talk)
	}

	return talks
}
