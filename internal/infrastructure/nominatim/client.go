package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/config"
	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewClient создает новый клиент для Nominatim reverse geocoding API
func NewClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.GeocoderRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

type reverseResponse struct {
	Address struct {
		Country string `json:"country"`
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
	} `json:"address"`
}

// ReverseGeocode возвращает страну и город по координатам станции.
// Если города нет, подставляется town или village - как отдаёт Nominatim
// для небольших населённых пунктов.
func (c *client) ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.Address, error) {
	reqURL := fmt.Sprintf("%s/reverse?lat=%s&lon=%s&format=jsonv2",
		c.baseURL,
		url.QueryEscape(fmt.Sprintf("%f", lat)),
		url.QueryEscape(fmt.Sprintf("%f", lon)),
	)

	c.logger.Debug("Calling Nominatim reverse API",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("nominatim API error: status %d", resp.StatusCode)
	}

	var reverseResp reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&reverseResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if reverseResp.Address.Country == "" {
		return nil, nil
	}

	address := &domain.Address{
		Country: reverseResp.Address.Country,
		City:    reverseResp.Address.City,
	}
	if address.City == "" {
		if reverseResp.Address.Town != "" {
			address.City = reverseResp.Address.Town
		} else if reverseResp.Address.Village != "" {
			address.City = reverseResp.Address.Village
		}
	}

	return address, nil
}
