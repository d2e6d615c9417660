package listquery

import (
	"gorm.io/gorm"
)

// MaxPageSize bounds what a single list call can pull from storage.
const MaxPageSize = 100

type Cond struct {
	Expr string
	Args []any
}

type Order struct {
	Column string
	Desc   bool
}

// Plan is a bounded, fully-resolved query shape. It never executes anything
// itself; repositories apply it to a gorm query.
type Plan struct {
	Conds    []Cond
	Orders   []Order
	Page     int
	PageSize int
	Limit    int
	Offset   int
}

type Builder struct {
	plan Plan
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Where(expr string, args ...any) *Builder {
	b.plan.Conds = append(b.plan.Conds, Cond{Expr: expr, Args: args})
	return b
}

func (b *Builder) OrderBy(column string, desc bool) *Builder {
	b.plan.Orders = append(b.plan.Orders, Order{Column: column, Desc: desc})
	return b
}

// Paginate takes a 1-indexed page. Out-of-range input is clamped rather than
// rejected so a sloppy client still gets a sane first page.
func (b *Builder) Paginate(page, pageSize int) *Builder {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	b.plan.Page = page
	b.plan.PageSize = pageSize
	b.plan.Limit = pageSize
	b.plan.Offset = (page - 1) * pageSize
	return b
}

func (b *Builder) Build() Plan {
	if b.plan.Limit == 0 {
		b.Paginate(1, 10)
	}
	return b.plan
}

// Apply decorates a gorm query with the plan's conditions and ordering.
func (p Plan) Apply(q *gorm.DB) *gorm.DB {
	for _, c := range p.Conds {
		q = q.Where(c.Expr, c.Args...)
	}
	for _, o := range p.Orders {
		dir := " ASC"
		if o.Desc {
			dir = " DESC"
		}
		q = q.Order(o.Column + dir)
	}
	return q.Limit(p.Limit).Offset(p.Offset)
}

// ApplyConds decorates a query with the filters only, for COUNT queries that
// must match the page query without its limit/offset/ordering.
func (p Plan) ApplyConds(q *gorm.DB) *gorm.DB {
	for _, c := range p.Conds {
		q = q.Where(c.Expr, c.Args...)
	}
	return q
}

// BookingOrder maps a caller-facing booking sort key onto an order clause.
// Unknown keys fall back to newest-first.
func BookingOrder(sort string) Order {
	switch sort {
	case "oldest":
		return Order{Column: "bookings.created_at", Desc: false}
	case "amount_high":
		return Order{Column: "bookings.total_price", Desc: true}
	case "amount_low":
		return Order{Column: "bookings.total_price", Desc: false}
	default: // "newest" and anything unrecognized
		return Order{Column: "bookings.created_at", Desc: true}
	}
}

// CommentOrder maps the moderation list's sortBy/sortOrder pair. Only the
// created_at family is sortable.
func CommentOrder(sortBy, sortOrder string) Order {
	col := "story_comments.created_at"
	if sortBy == "updated_at" {
		col = "story_comments.updated_at"
	}
	return Order{Column: col, Desc: sortOrder != "asc"}
}
