package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// NewPaging normalises page/perPage. Non-positive values fall back to the
// defaults; maxPerPage caps perPage unless it is 0. Pages past the int range
// are clamped, so Offset never wraps.
func NewPaging(page, perPage, maxPerPage int) Paging {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}
	// keep (page-1)*perPage inside int
	if last := math.MaxInt / perPage; page-1 > last {
		page = last
	}
	return Paging{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
		Limit:   perPage,
	}
}

// ResolvePaging membaca ?page= & ?per_page= lalu normalisasi.
func ResolvePaging(c *fiber.Ctx, maxPerPage int) Paging {
	page := atoiDefault(c.Query("page"), DefaultPage)
	perPage := atoiDefault(c.Query("per_page"), DefaultPerPage)
	return NewPaging(page, perPage, maxPerPage)
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
