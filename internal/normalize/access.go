package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/spounge-ai/handicap/internal/domain"
)

type productAccessResponse struct {
	Success *looseString `json:"success"`
}

// DecodeProductAccess maps the product access acknowledgement.
func DecodeProductAccess(body []byte) (*domain.ProductAccess, error) {
	var resp productAccessResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding product access: %w", err)
	}
	return &domain.ProductAccess{Success: loose(resp.Success)}, nil
}
