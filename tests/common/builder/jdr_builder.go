//go:build unit || e2e

package builder

import (
	"github.com/romainbeka/dashboardsteph/internal/domain/jdr"
	"github.com/romainbeka/dashboardsteph/internal/pkg/patch"
)

type JDRBuilder struct {
	ID                 int
	Name               string
	Description        *string
	Price              *float64
	Discount           *string
	Systems            []string
	AssociatedProducts []string
	Pages              *int
	Theme              *jdr.Theme
	Language           *string
	AvatarSrc          string
}

func NewJDRBuilder() *JDRBuilder {
	return &JDRBuilder{
		ID:          1,
		Name:        "Nightprowler",
		Description: patch.Ptr("Jeu de rôle médiéval fantastique"),
		Price:       patch.Ptr(39.9),
		Systems:     []string{"d20"},
		Pages:       patch.Ptr(256),
		Theme:       patch.Ptr(jdr.ThemeFantastique),
		Language:    patch.Ptr("Français"),
	}
}

func (b *JDRBuilder) With(mutate func(*JDRBuilder)) *JDRBuilder {
	mutate(b)
	return b
}

func (b *JDRBuilder) WithID(id int) *JDRBuilder {
	b.ID = id
	return b
}

func (b *JDRBuilder) WithName(name string) *JDRBuilder {
	b.Name = name
	return b
}

func (b *JDRBuilder) WithAssociated(names ...string) *JDRBuilder {
	b.AssociatedProducts = names
	return b
}

func (b *JDRBuilder) WithAvatar(src string) *JDRBuilder {
	b.AvatarSrc = src
	return b
}

// Build methods
func (b *JDRBuilder) BuildDraft() jdr.Draft {
	d := jdr.Draft{
		Name:               b.Name,
		Description:        b.Description,
		Price:              b.Price,
		Discount:           b.Discount,
		Systems:            cloneStrings(b.Systems),
		AssociatedProducts: cloneStrings(b.AssociatedProducts),
		Pages:              b.Pages,
		Theme:              b.Theme,
		Language:           b.Language,
	}
	if b.AvatarSrc != "" {
		d.Avatar = &jdr.Avatar{Src: b.AvatarSrc}
	}
	return d
}

func (b *JDRBuilder) BuildDomain() jdr.JDR {
	d := b.BuildDraft()
	return jdr.JDR{
		ID:                 b.ID,
		Name:               d.Name,
		Description:        d.Description,
		Price:              d.Price,
		Discount:           d.Discount,
		Systems:            d.Systems,
		AssociatedProducts: d.AssociatedProducts,
		Pages:              d.Pages,
		Theme:              d.Theme,
		Language:           d.Language,
		Avatar:             d.Avatar,
	}
}

// BuildForm returns the multipart field map a client would send.
func (b *JDRBuilder) BuildForm() map[string]any {
	form := map[string]any{"name": b.Name}
	if b.Description != nil {
		form["description"] = *b.Description
	}
	if b.Price != nil {
		form["price"] = *b.Price
	}
	if b.Discount != nil {
		form["discount"] = *b.Discount
	}
	if len(b.Systems) > 0 {
		form["systems"] = b.Systems
	}
	if len(b.AssociatedProducts) > 0 {
		form["associatedProducts"] = b.AssociatedProducts
	}
	if b.Pages != nil {
		form["pages"] = *b.Pages
	}
	if b.Theme != nil {
		form["theme"] = string(*b.Theme)
	}
	if b.Language != nil {
		form["language"] = *b.Language
	}
	return form
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
