package wrapper

import (
	"strconv"

	"github.com/robertkrimen/otto"
)

// Export converts a script value to a Go value suitable for JSON
// encoding, wrapped arrays are exported as {"shape": [...], "data": [...]}.
func Export(v otto.Value) (interface{}, error) {
	if a, ok := Unwrap(v); ok {
		return map[string]interface{}{
			"shape": a.Shape(),
			"data":  a.Data(),
		}, nil
	} else if !v.IsObject() {
		return v.Export()
	}

	obj := v.Object()
	switch obj.Class() {
	case "Array":
		length, err := obj.Get("length")
		if err != nil {
			return nil, err
		}
		n, err := length.ToInteger()
		if err != nil {
			return nil, err
		}
		elems := make([]interface{}, n)
		for i := range elems {
			elem, err := obj.Get(strconv.Itoa(i))
			if err != nil {
				return nil, err
			} else if elems[i], err = Export(elem); err != nil {
				return nil, err
			}
		}
		return elems, nil

	case "Object":
		fields := make(map[string]interface{})
		for _, key := range obj.Keys() {
			field, err := obj.Get(key)
			if err != nil {
				return nil, err
			} else if field.IsFunction() {
				continue
			} else if fields[key], err = Export(field); err != nil {
				return nil, err
			}
		}
		return fields, nil

	case "Function":
		return nil, nil
	}

	return v.Export()
}
