package listing

import (
	"github.com/shopspring/decimal"

	"github.com/planhaus/storefront/base/ctx"
)

// PlaceholderImage is served when a record carries no usable image at all.
const PlaceholderImage = "https://via.placeholder.com/600x400"

// Dataset selects which upstream collection a catalog query runs over.
type Dataset string

const (
	DatasetHousePlans Dataset = "house-plans"
	DatasetBuiltHomes Dataset = "built-homes"
)

// SectionName is a curated front-page rail.
type SectionName string

const (
	SectionPopular     SectionName = "popular"
	SectionBestSelling SectionName = "best-selling"
	SectionNew         SectionName = "new"
)

// Image is one gallery entry of a listing.
type Image struct {
	Id    int64  `json:"id"`
	Url   string `json:"image"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

type FloorRoom struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Floor struct {
	Number int         `json:"number"`
	Name   string      `json:"name"`
	Rooms  []FloorRoom `json:"rooms"`
}

// Listing is the view model every card, rail and purchase modal renders from.
// It is derived from the raw upstream payload exactly once, in FromRaw.
type Listing struct {
	Id            int64           `json:"id"`
	Title         string          `json:"title"`
	Price         decimal.Decimal `json:"price"`
	Bedrooms      int             `json:"bedrooms"`
	Bathrooms     int             `json:"bathrooms"`
	Garage        int             `json:"garage"`
	FloorArea     float64         `json:"floorArea"`
	Levels        int             `json:"levels"`
	Width         float64         `json:"width"`
	Depth         float64         `json:"depth"`
	Styles        []string        `json:"styles"`
	Images        []string        `json:"images"`
	IsNew         bool            `json:"isNew"`
	IsPopular     bool            `json:"isPopular"`
	IsBestSelling bool            `json:"isBestSelling"`
	PetFriendly   bool            `json:"petFriendly"`
	VideoUrl      string          `json:"videoUrl,omitempty"`
	Description   string          `json:"description,omitempty"`
	Features      []string        `json:"features"`
	Amenities     []string        `json:"amenities"`
	Floors        []Floor         `json:"floors"`
}

// DisplayImage is the single resolved thumbnail image. Images is never
// empty after FromRaw, so this is just the head of the gallery.
func (l *Listing) DisplayImage() string {
	if len(l.Images) == 0 {
		return PlaceholderImage
	}
	return l.Images[0]
}

// Repo loads the working set of listings for a dataset.
type Repo interface {
	List(c ctx.Ctx, dataset Dataset) ([]*Listing, error)
	FindOne(c ctx.Ctx, id int64) (*Listing, error)
}

// CatalogQuery is one full set of pipeline inputs.
type CatalogQuery struct {
	Filters  FilterCriteria
	Search   string
	Sort     SortKey
	Page     int
	PageSize int
}

// CatalogPage is the derived slice for display.
type CatalogPage struct {
	Total      int        `json:"total"`
	TotalPages int        `json:"totalPages"`
	Page       int        `json:"page"`
	Items      []*Listing `json:"items"`
}

// CatalogUsecase runs the filter, search, sort and paginate pipeline.
type CatalogUsecase interface {
	Page(c ctx.Ctx, dataset Dataset, q CatalogQuery) (*CatalogPage, error)
	Section(c ctx.Ctx, name SectionName) ([]*Listing, error)
	FindOne(c ctx.Ctx, id int64) (*Listing, error)
}
