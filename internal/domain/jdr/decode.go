package jdr

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// legacySecondaryKey is the spelling older catalog files use for
// compatibleSystemsSecondary.
const legacySecondaryKey = "compatibleSystemsecondaire"

// UnmarshalJSON reads records as the catalog has historically stored them.
// Form values used to be kept as whatever JSON they parsed to, so a text
// attribute may hold a number and a list may hold a single tag. Only a
// record that is not a JSON object is rejected.
func (j *JDR) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	out := JDR{
		Description:                looseText(raw["description"]),
		Price:                      looseFloat(raw["price"]),
		Discount:                   looseText(raw["discount"]),
		Systems:                    looseList(raw["systems"]),
		CompatibleSystems:          looseList(raw["compatibleSystems"]),
		CompatibleSystemsSecondary: looseList(raw["compatibleSystemsSecondary"]),
		AssociatedProducts:         looseList(raw["associatedProducts"]),
		Pages:                      looseInt(raw["pages"]),
		Language:                   looseText(raw["language"]),
		Avatar:                     looseAvatar(raw["avatar"]),
	}
	if id := looseInt(raw["id"]); id != nil {
		out.ID = *id
	}
	if name := looseText(raw["name"]); name != nil {
		out.Name = *name
	}
	if theme := looseText(raw["theme"]); theme != nil {
		t := Theme(*theme)
		out.Theme = &t
	}
	for _, tag := range looseList(raw[legacySecondaryKey]) {
		out.CompatibleSystemsSecondary = addName(out.CompatibleSystemsSecondary, tag)
	}

	*j = out
	return nil
}

func isNull(m json.RawMessage) bool {
	m = bytes.TrimSpace(m)
	return len(m) == 0 || string(m) == "null"
}

// looseText returns strings as is and any other JSON value as its compact text.
func looseText(m json.RawMessage) *string {
	if isNull(m) {
		return nil
	}
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return &s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, m); err != nil {
		return nil
	}
	s = buf.String()
	return &s
}

// looseFloat accepts a JSON number or a string holding one.
func looseFloat(m json.RawMessage) *float64 {
	s := looseText(m)
	if s == nil {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func looseInt(m json.RawMessage) *int {
	v := looseFloat(m)
	if v == nil || *v != math.Trunc(*v) {
		return nil
	}
	i := int(*v)
	return &i
}

// looseList accepts an array of scalars or a single tag.
func looseList(m json.RawMessage) []string {
	if isNull(m) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(m, &items); err != nil {
		if s := looseText(m); s != nil && strings.TrimSpace(*s) != "" {
			return []string{*s}
		}
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := looseText(item); s != nil {
			out = append(out, *s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func looseAvatar(m json.RawMessage) *Avatar {
	if isNull(m) {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(m, &obj); err == nil {
		if src := looseText(obj["src"]); src != nil {
			return &Avatar{Src: *src}
		}
		return nil
	}
	if src := looseText(m); src != nil && *src != "" {
		return &Avatar{Src: *src}
	}
	return nil
}
