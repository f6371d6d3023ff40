package stats

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/AbdulWasayUl/go-covid-map/internal/api"
	"github.com/AbdulWasayUl/go-covid-map/internal/config"
	"github.com/AbdulWasayUl/go-covid-map/internal/logger"
	"github.com/AbdulWasayUl/go-covid-map/models"
)

const countriesPath = "/v2/countries"

type Service struct {
	Config  *config.Config
	Client  *api.Client
	BaseURL string
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		Config:  cfg,
		Client:  api.NewClient(cfg.FetchTimeout),
		BaseURL: cfg.StatsAPIBaseURL,
	}
}

// FetchData performs the single GET against the countries endpoint.
func (s *Service) FetchData(ctx context.Context) ([]byte, error) {
	return s.Client.Do(ctx, s.BaseURL+countriesPath, nil)
}

// ParseData decodes the countries array. ok is false when the body is missing,
// not an array, or an empty array; callers stop without treating that as an error.
func (s *Service) ParseData(data []byte) (records []models.CountryRecord, ok bool) {
	if len(bytes.TrimSpace(data)) == 0 {
		logger.Debug("[stats] Empty response body")
		return nil, false
	}

	var resp CountriesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		logger.Debug("[stats] Response is not a JSON array: %v", err)
		return nil, false
	}
	if len(resp) == 0 {
		logger.Debug("[stats] Response array is empty")
		return nil, false
	}

	return resp.Records(), true
}

// Fetch runs FetchData then ParseData. The error, when set, is an *api.FetchError.
func (s *Service) Fetch(ctx context.Context) ([]models.CountryRecord, bool, error) {
	data, err := s.FetchData(ctx)
	if err != nil {
		return nil, false, err
	}
	records, ok := s.ParseData(data)
	return records, ok, nil
}
