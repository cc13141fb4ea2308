package types

import (
	"github.com/go-playground/validator/v10"
)

// DefaultVariantCount is the number of ad variants generated when a request
// does not specify one.
const DefaultVariantCount = 3

// GenerateRequest is the job contract for one ad-generation run.
type GenerateRequest struct {
	OurBrand       string   `json:"our_brand" validate:"required"`
	CompetitorName string   `json:"competitor_name" validate:"required"`
	Zipcode        string   `json:"zipcode,omitempty"`
	Hashtags       []string `json:"hashtags,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	AudienceType   string   `json:"audience_type,omitempty"`
	OfferType      string   `json:"offer_type,omitempty" validate:"omitempty,oneof=discount promotion free_trial limited_time new_arrival event information"`
	Goal           string   `json:"goal,omitempty"`
	WebsiteURL     string   `json:"website_url,omitempty" validate:"omitempty,url"`
	NumVariations  int      `json:"num_variations,omitempty" validate:"omitempty,min=1,max=10"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Count returns the requested variant count, applying the default.
func (r *GenerateRequest) Count() int {
	if r.NumVariations <= 0 {
		return DefaultVariantCount
	}
	return r.NumVariations
}

// GenerateResponse is the job result returned to callers.
// Degraded reports that one or more variants had to be synthesized after
// generation failures; FailedAttempts counts the variant attempts that did
// not produce real content.
type GenerateResponse struct {
	Success        bool               `json:"success"`
	Ads            []GeneratedVariant `json:"ads,omitempty"`
	Count          int                `json:"count"`
	Cached         bool               `json:"cached"`
	Degraded       bool               `json:"degraded,omitempty"`
	FailedAttempts int                `json:"failed_attempts,omitempty"`
	CampaignID     *int64             `json:"campaign_id,omitempty"`
	Error          string             `json:"error,omitempty"`
}

// CompetitorIntel is the optional enrichment supplied by the
// competitor-intelligence collaborator. Source "none" signals that no
// intelligence was gathered and is fully supported downstream.
type CompetitorIntel struct {
	BusinessName string   `json:"business_name"`
	Website      string   `json:"website,omitempty"`
	Description  string   `json:"description,omitempty"`
	Services     []string `json:"services,omitempty"`
	KeyFeatures  []string `json:"key_features,omitempty"`
	Source       string   `json:"source"`
}

// Empty reports whether the intel carries no usable signal.
func (c CompetitorIntel) Empty() bool {
	return c.Source == "" || c.Source == "none" || c.Description == ""
}
