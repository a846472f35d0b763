package yieldapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

const yieldsPath = "api/yields"

// escapeID escapa o id como um único segmento. "." e ".." viram %2E para não
// serem resolvidos como caminho relativo ao juntar a URL.
func escapeID(id string) string {
	if id == "." || id == ".." {
		return strings.Repeat("%2E", len(id))
	}
	return url.PathEscape(id)
}

func (c *YieldClient) ListYields(ctx context.Context) ([]domain.YieldRecord, error) {
	var records []domain.YieldRecord
	if err := c.do(ctx, http.MethodGet, c.sessionToken(), nil, &records, yieldsPath); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *YieldClient) GetYield(ctx context.Context, id string) (*domain.YieldRecord, error) {
	var record domain.YieldRecord
	if err := c.do(ctx, http.MethodGet, c.sessionToken(), nil, &record, yieldsPath, escapeID(id)); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *YieldClient) CreateYield(ctx context.Context, input domain.YieldInput) (*domain.YieldRecord, error) {
	var record domain.YieldRecord
	if err := c.do(ctx, http.MethodPost, c.sessionToken(), input, &record, yieldsPath); err != nil {
		return nil, err
	}
	if record.ID == "" && record.CropName == "" {
		// Backend respondeu sem corpo; devolvemos o que foi enviado
		record = input.Record("")
	}
	return &record, nil
}

func (c *YieldClient) UpdateYield(ctx context.Context, id string, input domain.YieldInput) (*domain.YieldRecord, error) {
	var record domain.YieldRecord
	if err := c.do(ctx, http.MethodPut, c.sessionToken(), input, &record, yieldsPath, escapeID(id)); err != nil {
		return nil, err
	}
	if record.ID == "" && record.CropName == "" {
		record = input.Record(id)
	}
	return &record, nil
}

func (c *YieldClient) DeleteYield(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.sessionToken(), nil, nil, yieldsPath, escapeID(id))
}
