package usecase

import (
	"sort"

	"github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/base/math"
	"github.com/planhaus/storefront/base/metrics"
	"github.com/planhaus/storefront/domain"
	"github.com/planhaus/storefront/domain/listing"
)

// DefaultPageSize matches the built-homes grid.
const DefaultPageSize = 6

type impl struct {
	repo listing.Repo
	met  metrics.Service
}

func New(repo listing.Repo) listing.CatalogUsecase {
	return &impl{
		repo: repo,
		met:  metrics.New("catalog"),
	}
}

func (im *impl) Page(c ctx.Ctx, dataset listing.Dataset, q listing.CatalogQuery) (*listing.CatalogPage, error) {
	defer im.met.BumpTime("page.time", "dataset", string(dataset)).End()

	all, err := im.repo.List(c, dataset)
	if err != nil {
		c.WithField("err", err).Error("repo.List failed")
		return nil, err
	}
	return BuildPage(all, q), nil
}

func (im *impl) Section(c ctx.Ctx, name listing.SectionName) ([]*listing.Listing, error) {
	all, err := im.repo.List(c, listing.DatasetHousePlans)
	if err != nil {
		c.WithField("err", err).Error("repo.List failed")
		return nil, err
	}

	out := []*listing.Listing{}
	for _, l := range all {
		switch name {
		case listing.SectionPopular:
			if l.IsPopular {
				out = append(out, l)
			}
		case listing.SectionBestSelling:
			if l.IsBestSelling {
				out = append(out, l)
			}
		case listing.SectionNew:
			if l.IsNew {
				out = append(out, l)
			}
		default:
			return nil, domain.ErrBadParamInput
		}
	}
	return out, nil
}

func (im *impl) FindOne(c ctx.Ctx, id int64) (*listing.Listing, error) {
	l, err := im.repo.FindOne(c, id)
	if err != nil {
		c.WithField("err", err).WithField("id", id).Error("repo.FindOne failed")
		return nil, err
	}
	return l, nil
}

// BuildPage runs the whole pipeline over an in-memory working set:
// filter (AND across criteria) -> search -> stable sort -> paginate.
// It performs no I/O and cannot fail; an empty result is zero pages and
// an empty slice. A page beyond the last yields an empty slice; clamping
// the page control is the caller's concern.
func BuildPage(records []*listing.Listing, q listing.CatalogQuery) *listing.CatalogPage {
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	filtered := make([]*listing.Listing, 0, len(records))
	for _, l := range records {
		if !q.Filters.Match(l) {
			continue
		}
		if !listing.MatchSearch(l, q.Search) {
			continue
		}
		filtered = append(filtered, l)
	}

	// stable keeps ties in their prior relative order, which is what makes
	// the flag partitions deterministic
	sort.SliceStable(filtered, func(i, j int) bool {
		return q.Sort.Less(filtered[i], filtered[j])
	})

	total := len(filtered)
	totalPages := math.CeilInt(total, pageSize)

	start := (page - 1) * pageSize
	end := math.MinInt(start+pageSize, total)
	items := []*listing.Listing{}
	if start < total {
		items = filtered[start:end]
	}

	return &listing.CatalogPage{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		Items:      items,
	}
}
