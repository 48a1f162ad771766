package listing

import (
	"bytes"
	"strconv"

	"github.com/shopspring/decimal"
)

// Price tolerates quoted and bare numeric JSON. The upstream serializes
// decimals as strings; a malformed value coerces to zero instead of
// failing the whole payload, so one bad record cannot break sorting.
type Price struct {
	decimal.Decimal
}

func (p *Price) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		p.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		p.Decimal = decimal.Zero
		return nil
	}
	p.Decimal = d
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

// RawImage matches the upstream gallery entry. Some deployments send the
// url under image_url instead of image.
type RawImage struct {
	Id       int64  `json:"id"`
	Image    string `json:"image"`
	ImageUrl string `json:"image_url"`
	Title    string `json:"title"`
	Order    int    `json:"order"`
}

func (i RawImage) url() string {
	if i.Image != "" {
		return i.Image
	}
	return i.ImageUrl
}

type RawNamed struct {
	Name string `json:"name"`
}

// RawListing is the upstream wire shape of a house plan or built home.
type RawListing struct {
	Id            int64      `json:"id"`
	Title         string     `json:"title"`
	Price         Price      `json:"price"`
	Bedrooms      int        `json:"bedrooms"`
	Bathrooms     int        `json:"bathrooms"`
	Garage        int        `json:"garage"`
	SquareFeet    float64    `json:"square_feet"`
	WidthMeters   float64    `json:"width_meters"`
	DepthMeters   float64    `json:"depth_meters"`
	Style         string     `json:"style"`
	Description   string     `json:"description"`
	PrimaryImage  string     `json:"primary_image"`
	Images        []RawImage `json:"images"`
	IsPopular     bool       `json:"is_popular"`
	IsBestSelling bool       `json:"is_best_selling"`
	IsNew         bool       `json:"is_new"`
	IsPetFriendly bool       `json:"is_pet_friendly"`
	VideoUrl      string     `json:"video_url"`
	Features      []RawNamed `json:"features"`
	Amenities     []RawNamed `json:"amenities"`
	Floors        []Floor    `json:"floors"`
}

// FromRaw is the single raw-to-view-model mapping every call site shares.
//
// Image resolution order: explicit gallery images first, then the declared
// primary image, then the placeholder. The result is never empty, so the
// first element is always the resolved display image.
func FromRaw(raw *RawListing) *Listing {
	images := make([]string, 0, len(raw.Images)+1)
	for _, img := range raw.Images {
		if url := img.url(); url != "" {
			images = append(images, url)
		}
	}
	if raw.PrimaryImage != "" {
		images = append(images, raw.PrimaryImage)
	}
	if len(images) == 0 {
		images = []string{PlaceholderImage}
	}

	levels := len(raw.Floors)
	if levels == 0 {
		levels = 1
	}

	styles := []string{}
	if raw.Style != "" {
		styles = append(styles, raw.Style)
	}

	features := make([]string, 0, len(raw.Features))
	for _, f := range raw.Features {
		features = append(features, f.Name)
	}
	amenities := make([]string, 0, len(raw.Amenities))
	for _, a := range raw.Amenities {
		amenities = append(amenities, a.Name)
	}

	return &Listing{
		Id:            raw.Id,
		Title:         raw.Title,
		Price:         raw.Price.Decimal,
		Bedrooms:      raw.Bedrooms,
		Bathrooms:     raw.Bathrooms,
		Garage:        raw.Garage,
		FloorArea:     raw.SquareFeet,
		Levels:        levels,
		Width:         raw.WidthMeters,
		Depth:         raw.DepthMeters,
		Styles:        styles,
		Images:        images,
		IsNew:         raw.IsNew,
		IsPopular:     raw.IsPopular,
		IsBestSelling: raw.IsBestSelling,
		PetFriendly:   raw.IsPetFriendly,
		VideoUrl:      raw.VideoUrl,
		Description:   raw.Description,
		Features:      features,
		Amenities:     amenities,
		Floors:        raw.Floors,
	}
}

// FromRawList maps a whole upstream page.
func FromRawList(raws []*RawListing) []*Listing {
	out := make([]*Listing, 0, len(raws))
	for _, raw := range raws {
		out = append(out, FromRaw(raw))
	}
	return out
}
