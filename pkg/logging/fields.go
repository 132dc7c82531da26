package logging

// Detail enriches a log entry with contextual data.
type Detail interface {
	addTo(e entry)
}

// Field is a single key value pair detail.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(e entry) {
	e[f.Key] = toFieldValue(f.Value)
}

// Fields groups key value pairs. Used as a Field value it becomes a nested object.
type Fields map[string]any

func (fields Fields) addTo(e entry) {
	for k, v := range fields {
		Field(k, v).addTo(e)
	}
}

// ErrField adds the error's message to the entry under the "error" key.
// A nil error adds nothing.
func ErrField(err error) Detail {
	if err == nil {
		return nullDetail{}
	}
	return Field("error", Fields{"message": err.Error()})
}

func toFieldValue(val any) any {
	d, ok := val.(Detail)
	if !ok {
		return val
	}
	le := entry{}
	d.addTo(le)
	return map[string]any(le)
}

type entry map[string]any

type nullDetail struct{}

func (nullDetail) addTo(entry) {}
