package bridge

import (
	"context"
	"fmt"
)

// User attribute slots are probed 1..100, matching the vendor UI range.
const maxUserAttributeSlot = 100

func (d *Dispatcher) registerAttribute() {
	d.register("get_standard_attributes", d.handleStandardAttributes)
	d.register("get_user_attributes", d.handleUserAttributes)
	d.register("list_defined_user_attributes", d.handleListDefinedUserAttributes)
}

func (d *Dispatcher) handleStandardAttributes(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.ElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	byID := make(map[string]any, len(ids))
	for _, id := range ids {
		byID[idKey(id)] = map[string]any{
			"name":     attrOrNil(d.api.Attributes.Name, id),
			"group":    attrOrNil(d.api.Attributes.Group, id),
			"subgroup": attrOrNil(d.api.Attributes.Subgroup, id),
			"comment":  attrOrNil(d.api.Attributes.Comment, id),
			"material": attrOrNil(d.api.Attributes.MaterialName, id),
		}
	}
	return map[string]any{"attributes_by_id": byID}, nil
}

func (d *Dispatcher) handleUserAttributes(ctx context.Context, args Args) (map[string]any, error) {
	ids, err := args.ElementIDs("element_ids")
	if err != nil {
		return nil, err
	}
	numbersRaw, err := args.Floats("attribute_numbers")
	if err != nil {
		return nil, err
	}
	numbers := make([]int, 0, len(numbersRaw))
	for _, n := range numbersRaw {
		if n <= 0 || n != float64(int(n)) {
			return nil, fmt.Errorf("attribute numbers must be positive integers, got %v", n)
		}
		numbers = append(numbers, int(n))
	}

	byID := make(map[string]any, len(ids))
	for _, id := range ids {
		attrs := make(map[string]any, len(numbers))
		for _, num := range numbers {
			value, err := d.api.Attributes.UserAttribute(id, num)
			if err != nil {
				attrs[idKey(num)] = nil
				continue
			}
			attrs[idKey(num)] = value
		}
		byID[idKey(id)] = attrs
	}
	return map[string]any{"user_attributes_by_id": byID}, nil
}

func (d *Dispatcher) handleListDefinedUserAttributes(ctx context.Context, args Args) (map[string]any, error) {
	defined := make(map[string]any)
	for slot := 1; slot <= maxUserAttributeSlot; slot++ {
		name, err := d.api.Attributes.UserAttributeName(slot)
		if err != nil {
			continue
		}
		if name != "" {
			defined[idKey(slot)] = name
		}
	}
	return map[string]any{"defined_attributes": defined}, nil
}
