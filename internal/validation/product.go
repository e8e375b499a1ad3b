package validation

import (
	"math"
	"strings"
)

// MediaPayload is the validated embedded media block.
type MediaPayload struct {
	Images        []string
	Video         string
	PreviewImages []string
}

// DetailPayload is one validated size/weight variant.
type DetailPayload struct {
	Size        float64
	Weight      float64
	Height      float64
	Stock       int
	Description string
}

// ProductPayload is a validated product create/update body.
type ProductPayload struct {
	ProductName string
	Making      float64
	Discount    float64
	ItemFor     []string
	Category    []string
	Material    string
	Metal       string
	Media       MediaPayload
	Details     []DetailPayload
	Description string
}

type rawMedia struct {
	Images        []string `json:"images"`
	Video         *string  `json:"video"`
	PreviewImages []string `json:"previewImages"`
}

type rawDetail struct {
	Size        *float64 `json:"size"`
	Weight      *float64 `json:"weight"`
	Height      *float64 `json:"height"`
	Stock       *float64 `json:"stock"`
	Description *string  `json:"description"`
}

// ParseProduct validates a product payload. Names and descriptions are
// lowercased, making/discount are range-checked and rounded to two places,
// and every reference field must carry well-formed identifiers.
func ParseProduct(body []byte) (*ProductPayload, error) {
	var raw struct {
		ProductName *string     `json:"productName"`
		Making      *float64    `json:"making"`
		Discount    *float64    `json:"discount"`
		ItemFor     []string    `json:"itemFor"`
		Category    []string    `json:"category"`
		Material    *string     `json:"material"`
		Metal       *string     `json:"metal"`
		Media       *rawMedia   `json:"media"`
		Details     []rawDetail `json:"details"`
		Description *string     `json:"description"`
	}
	if err := decodeStrict(body, &raw); err != nil {
		return nil, errorf("malformed body")
	}

	var problems []string
	p := &ProductPayload{
		ProductName: requireName("productName", raw.ProductName, &problems),
		Making:      requirePercent("making", raw.Making, &problems),
		Discount:    requirePercent("discount", raw.Discount, &problems),
		ItemFor:     requireIDList("itemFor", raw.ItemFor, &problems),
		Category:    requireIDList("category", raw.Category, &problems),
		Material:    requireID("material", raw.Material, &problems),
		Metal:       requireID("metal", raw.Metal, &problems),
	}

	p.Media = parseMedia(raw.Media, &problems)
	p.Details = parseDetails(raw.Details, &problems)

	if raw.Description == nil || strings.TrimSpace(*raw.Description) == "" {
		problems = append(problems, "description is required")
	} else {
		p.Description = strings.ToLower(*raw.Description)
	}

	if len(problems) > 0 {
		return nil, &Error{Problems: problems}
	}
	return p, nil
}

func requirePercent(field string, value *float64, problems *[]string) float64 {
	if value == nil {
		*problems = append(*problems, field+" is required")
		return 0
	}
	if *value < 0 || *value > 100 {
		*problems = append(*problems, field+" must be between 0 and 100")
		return 0
	}
	return round2(*value)
}

func parseMedia(raw *rawMedia, problems *[]string) MediaPayload {
	if raw == nil {
		*problems = append(*problems, "media is required")
		return MediaPayload{}
	}

	m := MediaPayload{Images: raw.Images, PreviewImages: raw.PreviewImages}
	if len(raw.Images) == 0 {
		*problems = append(*problems, "at least one media image is required")
	}
	if raw.Video == nil || *raw.Video == "" {
		*problems = append(*problems, "media video is required")
	} else {
		m.Video = *raw.Video
	}
	return m
}

func parseDetails(raws []rawDetail, problems *[]string) []DetailPayload {
	if len(raws) == 0 {
		*problems = append(*problems, "at least one detail is required")
		return nil
	}

	details := make([]DetailPayload, 0, len(raws))
	for _, raw := range raws {
		var d DetailPayload
		ok := true
		if raw.Size == nil {
			*problems = append(*problems, "detail size is required")
			ok = false
		}
		if raw.Weight == nil {
			*problems = append(*problems, "detail weight is required")
			ok = false
		}
		if raw.Height == nil {
			*problems = append(*problems, "detail height is required")
			ok = false
		}
		switch {
		case raw.Stock == nil:
			*problems = append(*problems, "detail stock is required")
			ok = false
		case *raw.Stock != math.Trunc(*raw.Stock):
			*problems = append(*problems, "detail stock must be an integer")
			ok = false
		}
		if raw.Description == nil || strings.TrimSpace(*raw.Description) == "" {
			*problems = append(*problems, "detail description is required")
			ok = false
		}
		if !ok {
			continue
		}

		d.Size = *raw.Size
		d.Weight = *raw.Weight
		d.Height = *raw.Height
		d.Stock = int(*raw.Stock)
		d.Description = strings.ToLower(*raw.Description)
		details = append(details, d)
	}
	return details
}
