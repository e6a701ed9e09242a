package jdr

import (
	"strings"

	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"
)

var (
	ErrNameRequired = errs.Mark(errs.New("jdr name is required"), errs.ErrInvalidRequest)
	ErrInvalidTheme = errs.Mark(errs.New("jdr theme must be one of Contemporain, Horreur, Fantastique, Sci-fi"), errs.ErrInvalidRequest)
	ErrJDRNotFound  = errs.Mark(errs.New("jdr not found"), errs.ErrNotFound)
)

type Theme string

const (
	ThemeContemporain Theme = "Contemporain"
	ThemeHorreur      Theme = "Horreur"
	ThemeFantastique  Theme = "Fantastique"
	ThemeSciFi        Theme = "Sci-fi"
)

func NewTheme(v string) (Theme, error) {
	switch t := Theme(v); t {
	case ThemeContemporain, ThemeHorreur, ThemeFantastique, ThemeSciFi:
		return t, nil
	}
	return "", ErrInvalidTheme
}

type Avatar struct {
	Src string `json:"src"`
}

// JDR is one catalog entry as persisted in the data file.
type JDR struct {
	ID                         int      `json:"id"`
	Name                       string   `json:"name"`
	Description                *string  `json:"description,omitempty"`
	Price                      *float64 `json:"price,omitempty"`
	Discount                   *string  `json:"discount,omitempty"`
	Systems                    []string `json:"systems,omitempty"`
	CompatibleSystems          []string `json:"compatibleSystems,omitempty"`
	CompatibleSystemsSecondary []string `json:"compatibleSystemsSecondary,omitempty"`
	AssociatedProducts         []string `json:"associatedProducts,omitempty"`
	Pages                      *int     `json:"pages,omitempty"`
	Theme                      *Theme   `json:"theme,omitempty"`
	Language                   *string  `json:"language,omitempty"`
	Avatar                     *Avatar  `json:"avatar,omitempty"`
}

// Draft is a record that has not been assigned an identity yet.
type Draft struct {
	Name                       string
	Description                *string
	Price                      *float64
	Discount                   *string
	Systems                    []string
	CompatibleSystems          []string
	CompatibleSystemsSecondary []string
	AssociatedProducts         []string
	Pages                      *int
	Theme                      *Theme
	Language                   *string
	Avatar                     *Avatar
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}
	if d.Theme != nil {
		if _, err := NewTheme(string(*d.Theme)); err != nil {
			return err
		}
	}
	return nil
}

// NewJDR promotes a draft into a record carrying id.
func NewJDR(id int, d Draft) (*JDR, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &JDR{
		ID:                         id,
		Name:                       strings.TrimSpace(d.Name),
		Description:                d.Description,
		Price:                      d.Price,
		Discount:                   d.Discount,
		Systems:                    d.Systems,
		CompatibleSystems:          d.CompatibleSystems,
		CompatibleSystemsSecondary: d.CompatibleSystemsSecondary,
		AssociatedProducts:         uniqueNames(d.AssociatedProducts),
		Pages:                      d.Pages,
		Theme:                      d.Theme,
		Language:                   d.Language,
		Avatar:                     d.Avatar,
	}, nil
}

// FindByID returns the index of the record with id, or -1.
func FindByID(records []JDR, id int) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}
