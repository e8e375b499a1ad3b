package validation

import (
	"bytes"
	"encoding/json"

	"github.com/example/vardhaman/internal/objectid"
)

// CategoryPayload is a validated category create/update body. A nil
// ParentCategoryID means the category sits at the root of the tree.
type CategoryPayload struct {
	CategoryName     string
	ParentCategoryID *string
}

// ParseCategory validates a category payload. The parentCategoryId key must
// be present and either null or a well-formed identifier.
func ParseCategory(body []byte) (*CategoryPayload, error) {
	var raw struct {
		CategoryName     *string         `json:"categoryName"`
		ParentCategoryID json.RawMessage `json:"parentCategoryId"`
	}
	if err := decodeStrict(body, &raw); err != nil {
		return nil, errorf("malformed body")
	}

	var problems []string
	name := requireName("categoryName", raw.CategoryName, &problems)

	var parent *string
	switch {
	case raw.ParentCategoryID == nil:
		problems = append(problems, "parentCategoryId is required")
	case bytes.Equal(raw.ParentCategoryID, []byte("null")):
		// root category
	default:
		var id string
		if err := json.Unmarshal(raw.ParentCategoryID, &id); err != nil || !objectid.IsValid(id) {
			problems = append(problems, "parentCategoryId is not a valid identifier")
		} else {
			parent = &id
		}
	}

	if len(problems) > 0 {
		return nil, &Error{Problems: problems}
	}
	return &CategoryPayload{CategoryName: name, ParentCategoryID: parent}, nil
}
