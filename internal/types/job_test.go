package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     GenerateRequest
		wantErr bool
	}{
		{
			name: "valid minimal request",
			req:  GenerateRequest{OurBrand: "Corner Bakery", CompetitorName: "Big Bread Co"},
		},
		{
			name: "valid with offer type",
			req: GenerateRequest{
				OurBrand:       "Corner Bakery",
				CompetitorName: "Big Bread Co",
				OfferType:      "discount",
				NumVariations:  5,
			},
		},
		{
			name:    "missing brand",
			req:     GenerateRequest{CompetitorName: "Big Bread Co"},
			wantErr: true,
		},
		{
			name:    "missing competitor",
			req:     GenerateRequest{OurBrand: "Corner Bakery"},
			wantErr: true,
		},
		{
			name: "unknown offer type",
			req: GenerateRequest{
				OurBrand:       "Corner Bakery",
				CompetitorName: "Big Bread Co",
				OfferType:      "clearance",
			},
			wantErr: true,
		},
		{
			name: "too many variations",
			req: GenerateRequest{
				OurBrand:       "Corner Bakery",
				CompetitorName: "Big Bread Co",
				NumVariations:  50,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateRequest_Count(t *testing.T) {
	req := GenerateRequest{}
	assert.Equal(t, DefaultVariantCount, req.Count())

	req.NumVariations = 7
	assert.Equal(t, 7, req.Count())
}

func TestCompetitorIntel_Empty(t *testing.T) {
	assert.True(t, CompetitorIntel{}.Empty())
	assert.True(t, CompetitorIntel{Source: "none"}.Empty())
	assert.True(t, CompetitorIntel{Source: "website"}.Empty(), "no description means no signal")
	assert.False(t, CompetitorIntel{Source: "website", Description: "A bakery."}.Empty())
}
