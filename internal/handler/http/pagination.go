package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PageParams are the sanitized pagination parameters of a request.
type PageParams struct {
	Page     int64
	PageSize int64
}

// ParsePageParams reads "page" and "pageSize" from the query string.
// Missing or malformed values fall back to the defaults; the page size is
// capped so a single request can never drain the collection.
func ParsePageParams(c *gin.Context) PageParams {
	params := PageParams{Page: 1, PageSize: defaultPageSize}

	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.ParseInt(raw, 10, 64); err == nil && page >= 1 {
			params.Page = page
		}
	}
	if raw := c.Query("pageSize"); raw != "" {
		if size, err := strconv.ParseInt(raw, 10, 64); err == nil && size >= 1 {
			if size > maxPageSize {
				size = maxPageSize
			}
			params.PageSize = size
		}
	}
	return params
}

// Skip returns the number of documents to skip for this page.
func (p PageParams) Skip() int64 {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the maximum number of documents for this page.
func (p PageParams) Limit() int64 {
	return p.PageSize
}

// PageLink is one navigation link of a paginated listing.
type PageLink struct {
	Rel string
	URL string
}

// BuildPageLinks computes the first/prev/next/last navigation links for a
// listing, relative to basePath. Out-of-range links are omitted: no prev on
// page one, no next on or beyond the last page. A listing with no results
// still gets first and last, both pointing at the single empty page.
func BuildPageLinks(basePath string, params PageParams, total int64) []PageLink {
	lastPage := total / params.PageSize
	if total%params.PageSize != 0 || lastPage == 0 {
		lastPage++
	}

	links := []PageLink{{Rel: "first", URL: pageURL(basePath, 1, params.PageSize)}}
	if params.Page > 1 {
		links = append(links, PageLink{Rel: "prev", URL: pageURL(basePath, params.Page-1, params.PageSize)})
	}
	if params.Page < lastPage {
		links = append(links, PageLink{Rel: "next", URL: pageURL(basePath, params.Page+1, params.PageSize)})
	}
	links = append(links, PageLink{Rel: "last", URL: pageURL(basePath, lastPage, params.PageSize)})
	return links
}

func pageURL(basePath string, page, pageSize int64) string {
	return fmt.Sprintf("%s?page=%d&pageSize=%d", basePath, page, pageSize)
}

// FormatLinkHeader serializes navigation links as an RFC 5988 Link header.
func FormatLinkHeader(links []PageLink) string {
	parts := make([]string, 0, len(links))
	for _, link := range links {
		parts = append(parts, fmt.Sprintf("<%s>; rel=%q", link.URL, link.Rel))
	}
	return strings.Join(parts, ", ")
}

// SetPageHeaders exposes the total count and the navigation links to the
// caller as response headers.
func SetPageHeaders(c *gin.Context, basePath string, params PageParams, total int64) {
	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.Header("Link", FormatLinkHeader(BuildPageLinks(basePath, params, total)))
}
