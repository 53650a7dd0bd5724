package catalog

import (
	"fmt"
	"strings"

	"github.com/yanqian/billboard-insights/internal/domain/billboard"
)

// MemoryCatalog is an immutable in-process billboard table.
type MemoryCatalog struct {
	items  []billboard.Billboard
	byCode map[string]int
	byID   map[int]int
}

// NewMemoryCatalog validates items and indexes them by code and numeric id.
func NewMemoryCatalog(items []billboard.Billboard) (*MemoryCatalog, error) {
	c := &MemoryCatalog{
		items:  make([]billboard.Billboard, 0, len(items)),
		byCode: make(map[string]int, len(items)),
		byID:   make(map[int]int, len(items)),
	}
	for _, item := range items {
		if err := validate(item); err != nil {
			return nil, err
		}
		if _, dup := c.byCode[item.Code]; dup {
			return nil, fmt.Errorf("duplicate billboard code %q", item.Code)
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate billboard id %d", item.ID)
		}
		c.byCode[item.Code] = len(c.items)
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// List returns a copy of every billboard in catalog order.
func (c *MemoryCatalog) List() []billboard.Billboard {
	out := make([]billboard.Billboard, len(c.items))
	copy(out, c.items)
	return out
}

// FindByCode matches the exact billboard code.
func (c *MemoryCatalog) FindByCode(code string) (billboard.Billboard, bool) {
	idx, ok := c.byCode[code]
	if !ok {
		return billboard.Billboard{}, false
	}
	return c.items[idx], true
}

// FindByID matches the numeric id.
func (c *MemoryCatalog) FindByID(id int) (billboard.Billboard, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return billboard.Billboard{}, false
	}
	return c.items[idx], true
}

// Len reports the number of billboards.
func (c *MemoryCatalog) Len() int {
	return len(c.items)
}

func validate(b billboard.Billboard) error {
	if !strings.HasPrefix(b.Code, "B") {
		return fmt.Errorf("billboard code %q must start with B", b.Code)
	}
	if b.ID <= 0 {
		return fmt.Errorf("billboard %s: id must be positive", b.Code)
	}
	switch b.Type {
	case billboard.KindDigital, billboard.KindStatic:
	default:
		return fmt.Errorf("billboard %s: unknown type %q", b.Code, b.Type)
	}
	switch b.TrafficLevel {
	case billboard.TrafficHigh, billboard.TrafficMedium:
	default:
		return fmt.Errorf("billboard %s: unknown traffic level %q", b.Code, b.TrafficLevel)
	}
	if b.MonthlyRate < 0 {
		return fmt.Errorf("billboard %s: monthly rate cannot be negative", b.Code)
	}
	return nil
}

var _ billboard.Catalog = (*MemoryCatalog)(nil)
