package validation

// MetalPayload is a validated metal create/update body.
type MetalPayload struct {
	MetalName string
}

// ParseMetal validates a metal payload.
func ParseMetal(body []byte) (*MetalPayload, error) {
	var raw struct {
		MetalName *string `json:"metalName"`
	}
	if err := decodeStrict(body, &raw); err != nil {
		return nil, errorf("malformed body")
	}

	var problems []string
	name := requireName("metalName", raw.MetalName, &problems)
	if len(problems) > 0 {
		return nil, &Error{Problems: problems}
	}
	return &MetalPayload{MetalName: name}, nil
}

// MaterialPayload is a validated material create/update body.
type MaterialPayload struct {
	MaterialName string
}

// ParseMaterial validates a material payload.
func ParseMaterial(body []byte) (*MaterialPayload, error) {
	var raw struct {
		MaterialName *string `json:"materialName"`
	}
	if err := decodeStrict(body, &raw); err != nil {
		return nil, errorf("malformed body")
	}

	var problems []string
	name := requireName("materialName", raw.MaterialName, &problems)
	if len(problems) > 0 {
		return nil, &Error{Problems: problems}
	}
	return &MaterialPayload{MaterialName: name}, nil
}

// ItemForPayload is a validated item-for create/update body.
type ItemForPayload struct {
	ItemForName string
}

// ParseItemFor validates an item-for payload.
func ParseItemFor(body []byte) (*ItemForPayload, error) {
	var raw struct {
		ItemForName *string `json:"itemForName"`
	}
	if err := decodeStrict(body, &raw); err != nil {
		return nil, errorf("malformed body")
	}

	var problems []string
	name := requireName("itemForName", raw.ItemForName, &problems)
	if len(problems) > 0 {
		return nil, &Error{Problems: problems}
	}
	return &ItemForPayload{ItemForName: name}, nil
}
