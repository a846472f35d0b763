package yieldapi

import (
	"context"
	"net/http"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

const historiesPath = "api/yield-histories"

func (c *YieldClient) ListHistories(ctx context.Context) ([]domain.YieldHistoryRecord, error) {
	var records []domain.YieldHistoryRecord
	if err := c.do(ctx, http.MethodGet, c.sessionToken(), nil, &records, historiesPath); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *YieldClient) ListHistorySeasons(ctx context.Context) ([]string, error) {
	var seasons []string
	if err := c.do(ctx, http.MethodGet, c.sessionToken(), nil, &seasons, historiesPath, "seasons"); err != nil {
		return nil, err
	}
	return seasons, nil
}
