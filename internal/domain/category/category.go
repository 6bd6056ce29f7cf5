package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrCategoryNotFound = errors.New("category not found")

// Category is reference data used to group events.
type Category struct {
	id          uint
	name        string
	slug        string
	description string
	icon        string
	color       string
	sortOrder   int
}

func NewCategory(name, slug, description, icon, color string, sortOrder int) (*Category, error) {
	name = strings.TrimSpace(name)
	slug = strings.TrimSpace(slug)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("category slug is required")
	}
	return &Category{
		name:        name,
		slug:        slug,
		description: description,
		icon:        icon,
		color:       color,
		sortOrder:   sortOrder,
	}, nil
}

func ReconstructCategory(id uint, name, slug, description, icon, color string, sortOrder int) *Category {
	return &Category{
		id:          id,
		name:        name,
		slug:        slug,
		description: description,
		icon:        icon,
		color:       color,
		sortOrder:   sortOrder,
	}
}

func (c *Category) ID() uint { return c.id }
func (c *Category) Name() string { return c.name }
func (c *Category) Slug() string { return c.slug }
func (c *Category) Description() string { return c.description }
func (c *Category) Icon() string { return c.icon }
func (c *Category) Color() string { return c.color }
func (c *Category) SortOrder() int { return c.sortOrder }

func (c *Category) SetID(id uint) {
	c.id = id
}

type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, id uint) (*Category, error)
	// Upsert inserts the category or updates the one with the same slug.
	Upsert(ctx context.Context, category *Category) error
}
