package headhunter

import (
	"context"
	"fmt"

	"hh-vacancy-search/internal/regions"

	"go.uber.org/zap"
)

func (c *Client) GetAllAreas(ctx context.Context) ([]AreaResponse, error) {
	data, err := c.get(ctx, "/areas", nil)
	if err != nil {
		c.logger.Error("failed to get all areas", zap.Error(err))
		return nil, fmt.Errorf("get all areas: %w", err)
	}

	var areas []AreaResponse
	if err := c.parseResponse(data, &areas); err != nil {
		c.logger.Error("failed to parse areas response", zap.Error(err))
		return nil, err
	}

	c.logger.Debug("all areas retrieved", zap.Int("count", len(areas)))

	return areas, nil
}

// RegionTree implements regions.TreeSource over /areas.
func (c *Client) RegionTree(ctx context.Context) ([]regions.Area, error) {
	areas, err := c.GetAllAreas(ctx)
	if err != nil {
		return nil, err
	}
	return toRegionTree(areas), nil
}

func toRegionTree(areas []AreaResponse) []regions.Area {
	if len(areas) == 0 {
		return nil
	}
	out := make([]regions.Area, len(areas))
	for i := range areas {
		out[i] = regions.Area{
			ID:    areas[i].ID,
			Name:  areas[i].Name,
			Areas: toRegionTree(areas[i].Areas),
		}
	}
	return out
}
