// Package catalog loads icon definitions and normalizes them into the
// canonical, ordered form the generators consume.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cpcf/iconforge/naming"
)

var (
	// ErrCatalogUnavailable is returned when the icon source cannot be read or
	// does not have the expected shape. No partial catalog accompanies it.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrDuplicateComponentName is returned when two icons resolve to the same
	// component name.
	ErrDuplicateComponentName = errors.New("duplicate component name")
)

// Attr is one attribute of an icon's root element. When Style is non-nil the
// attribute is a style record and Value is unused.
type Attr struct {
	Key   string
	Value string
	Style []Attr
}

// IsStyle reports whether the attribute holds a style record.
func (a Attr) IsStyle() bool {
	return a.Style != nil
}

// Record is an icon as delivered by the upstream source.
type Record struct {
	RawName  string
	Contents string
	Attrs    []Attr
}

// Icon is a Record with its resolved component name.
type Icon struct {
	Name     string
	RawName  string
	Contents string
	Attrs    []Attr
}

// Catalog is the ordered set of icons of one build. Order is the order of the
// upstream source and is observable in generated barrels.
type Catalog struct {
	icons []Icon
}

// Len returns the number of icons.
func (c Catalog) Len() int {
	return len(c.icons)
}

// At returns the i-th icon.
func (c Catalog) At(i int) Icon {
	return c.icons[i]
}

// Icons returns a copy of the icons in catalog order.
func (c Catalog) Icons() []Icon {
	return slices.Clone(c.icons)
}

// Names returns the component names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.icons))
	for i, icon := range c.icons {
		names[i] = icon.Name
	}
	return names
}

// DuplicateNameError reports two raw names that resolve to one component name.
type DuplicateNameError struct {
	Name   string
	First  string
	Second string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s %s: raw names %q and %q collide", ErrDuplicateComponentName, e.Name, e.First, e.Second)
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateComponentName
}

// FromRecords resolves component names for every record. It fails without
// returning a catalog if any record is invalid or two records collide.
func FromRecords(records []Record) (Catalog, error) {
	if len(records) == 0 {
		return Catalog{}, fmt.Errorf("%w: no icons defined", ErrCatalogUnavailable)
	}

	icons := make([]Icon, 0, len(records))
	owners := make(map[string]string, len(records))

	for i, rec := range records {
		if rec.RawName == "" {
			return Catalog{}, fmt.Errorf("%w: icon %d has an empty name", ErrCatalogUnavailable, i)
		}

		name := naming.Resolve(rec.RawName)
		if name == naming.Suffix {
			return Catalog{}, fmt.Errorf("%w: icon name %q has no letters or digits", ErrCatalogUnavailable, rec.RawName)
		}
		if first, taken := owners[name]; taken {
			return Catalog{}, &DuplicateNameError{Name: name, First: first, Second: rec.RawName}
		}
		owners[name] = rec.RawName

		icons = append(icons, Icon{
			Name:     name,
			RawName:  rec.RawName,
			Contents: rec.Contents,
			Attrs:    rec.Attrs,
		})
	}

	return Catalog{icons: icons}, nil
}
