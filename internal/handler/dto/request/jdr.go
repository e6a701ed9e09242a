package request

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/romainbeka/dashboardsteph/internal/domain/jdr"
	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"
	"github.com/romainbeka/dashboardsteph/internal/usecase/commands"

	"github.com/gin-gonic/gin/binding"
)

// ImageField is the multipart part routed to the image store.
const ImageField = "image"

var (
	ErrNoFormData      = errs.Mark(errs.New("Aucune donnée reçue."), errs.ErrInvalidRequest)
	ErrUnknownField    = errs.Mark(errs.New("unknown form field"), errs.ErrInvalidRequest)
	ErrMalformedField  = errs.Mark(errs.New("malformed form field"), errs.ErrInvalidRequest)
	ErrImageNotFile    = errs.Mark(errs.New("image must be sent as a file part"), errs.ErrInvalidRequest)
	ErrDuplicateImage  = errs.Mark(errs.New("only one image may be uploaded"), errs.ErrInvalidRequest)
	ErrFormNotReadable = errs.Mark(errs.New("form data could not be read"), errs.ErrInvalidRequest)
)

// CreateJDRRequest is the typed form of a multipart create request.
type CreateJDRRequest struct {
	Name                       string     `json:"name" binding:"required"`
	Description                *string    `json:"description,omitempty"`
	Price                      *float64   `json:"price,omitempty" binding:"omitempty,gte=0"`
	Discount                   *string    `json:"discount,omitempty"`
	Systems                    []string   `json:"systems,omitempty" binding:"omitempty,dive,required"`
	CompatibleSystems          []string   `json:"compatibleSystems,omitempty" binding:"omitempty,dive,required"`
	CompatibleSystemsSecondary []string   `json:"compatibleSystemsSecondary,omitempty" binding:"omitempty,dive,required"`
	AssociatedProducts         []string   `json:"associatedProducts,omitempty" binding:"omitempty,dive,required"`
	Pages                      *int       `json:"pages,omitempty" binding:"omitempty,gte=0"`
	Theme                      *string    `json:"theme,omitempty" binding:"omitempty,oneof=Contemporain Horreur Fantastique Sci-fi"`
	Language                   *string    `json:"language,omitempty"`
	Image                      *ImageFile `json:"-"`
}

type ImageFile struct {
	Filename string
	Data     []byte
}

type fieldSetter func(r *CreateJDRRequest, raw string) error

// Text fields keep the submitted text unless it is a JSON string literal.
// Numbers must be JSON numbers. Lists take a JSON array of strings or one
// tag per part, and parts may repeat.
var jdrFormFields = map[string]fieldSetter{
	"name":                       textField(func(r *CreateJDRRequest, v string) { r.Name = v }),
	"description":                textField(func(r *CreateJDRRequest, v string) { r.Description = &v }),
	"discount":                   textField(func(r *CreateJDRRequest, v string) { r.Discount = &v }),
	"language":                   textField(func(r *CreateJDRRequest, v string) { r.Language = &v }),
	"theme":                      textField(func(r *CreateJDRRequest, v string) { r.Theme = &v }),
	"price":                      numberField(func(r *CreateJDRRequest, v float64) { r.Price = &v }),
	"pages":                      intField(func(r *CreateJDRRequest, v int) { r.Pages = &v }),
	"systems":                    listField(func(r *CreateJDRRequest) *[]string { return &r.Systems }),
	"compatibleSystems":          listField(func(r *CreateJDRRequest) *[]string { return &r.CompatibleSystems }),
	"compatibleSystemsSecondary": listField(func(r *CreateJDRRequest) *[]string { return &r.CompatibleSystemsSecondary }),
	"compatibleSystemsecondaire": listField(func(r *CreateJDRRequest) *[]string { return &r.CompatibleSystemsSecondary }),
	"associatedProducts":         listField(func(r *CreateJDRRequest) *[]string { return &r.AssociatedProducts }),
}

// DecodeCreateJDR reads every part of a multipart body into a typed request.
// The caller bounds the body size.
func DecodeCreateJDR(r *http.Request) (*CreateJDRRequest, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, errs.Wrap(ErrNoFormData, err.Error())
	}

	req := &CreateJDRRequest{}
	parts := 0
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errs.Wrap(ErrFormNotReadable, err.Error())
		}
		parts++
		err = req.applyPart(part)
		part.Close()
		if err != nil {
			return nil, err
		}
	}
	if parts == 0 {
		return nil, ErrNoFormData
	}

	if err := binding.Validator.ValidateStruct(req); err != nil {
		return nil, errs.Wrap(ErrMalformedField, err.Error())
	}
	return req, nil
}

func (r *CreateJDRRequest) applyPart(part *multipart.Part) error {
	name := part.FormName()
	if name == "" {
		return nil
	}

	data, err := io.ReadAll(part)
	if err != nil {
		return errs.Wrap(ErrFormNotReadable, err.Error())
	}

	if name == ImageField {
		if part.FileName() == "" {
			return ErrImageNotFile
		}
		if len(data) == 0 {
			return nil
		}
		if r.Image != nil {
			return ErrDuplicateImage
		}
		r.Image = &ImageFile{Filename: part.FileName(), Data: data}
		return nil
	}

	set, ok := jdrFormFields[name]
	if !ok {
		return errs.Wrapf(ErrUnknownField, "%q", name)
	}
	raw := string(data)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if err := set(r, raw); err != nil {
		return errs.Wrapf(err, "field %q", name)
	}
	return nil
}

func (r *CreateJDRRequest) ToDomain() (jdr.Draft, *commands.ImageUpload) {
	draft := jdr.Draft{
		Name:                       r.Name,
		Description:                r.Description,
		Price:                      r.Price,
		Discount:                   r.Discount,
		Systems:                    r.Systems,
		CompatibleSystems:          r.CompatibleSystems,
		CompatibleSystemsSecondary: r.CompatibleSystemsSecondary,
		AssociatedProducts:         r.AssociatedProducts,
		Pages:                      r.Pages,
		Language:                   r.Language,
	}
	if r.Theme != nil {
		theme := jdr.Theme(*r.Theme)
		draft.Theme = &theme
	}

	var image *commands.ImageUpload
	if r.Image != nil {
		image = &commands.ImageUpload{Filename: r.Image.Filename, Data: r.Image.Data}
	}
	return draft, image
}

func textField(set func(*CreateJDRRequest, string)) fieldSetter {
	return func(r *CreateJDRRequest, raw string) error {
		set(r, decodeText(raw))
		return nil
	}
}

func numberField(set func(*CreateJDRRequest, float64)) fieldSetter {
	return func(r *CreateJDRRequest, raw string) error {
		var v float64
		if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &v); err != nil {
			return errs.Wrap(ErrMalformedField, "expected a number")
		}
		set(r, v)
		return nil
	}
}

func intField(set func(*CreateJDRRequest, int)) fieldSetter {
	return func(r *CreateJDRRequest, raw string) error {
		var v int
		if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &v); err != nil {
			return errs.Wrap(ErrMalformedField, "expected an integer")
		}
		set(r, v)
		return nil
	}
}

func listField(target func(*CreateJDRRequest) *[]string) fieldSetter {
	return func(r *CreateJDRRequest, raw string) error {
		list := target(r)
		trimmed := strings.TrimSpace(raw)
		if strings.HasPrefix(trimmed, "[") {
			var items []string
			if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
				return errs.Wrap(ErrMalformedField, "expected a JSON array of strings")
			}
			*list = append(*list, items...)
			return nil
		}
		*list = append(*list, decodeText(raw))
		return nil
	}
}

func decodeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal([]byte(trimmed), &s); err == nil {
			return s
		}
	}
	return raw
}
