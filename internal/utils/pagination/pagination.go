package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Pagination struct {
	Limit  int
	Offset int
}

// ParseFromRequest reads limit/offset query parameters. Values are clamped
// downstream by the ledger service; this only handles parse failures.
func ParseFromRequest(c *fiber.Ctx) Pagination {
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil {
		limit = 20
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		offset = 0
	}
	return Pagination{
		Limit:  limit,
		Offset: offset,
	}
}
