package validation

// Errors maps a field key to its message. An empty message means the field passed.
type Errors map[string]string

// Empty returns an error map with every field present and passing.
func Empty() Errors {
	errs := make(Errors, len(Fields))
	for _, field := range Fields {
		errs[field] = ""
	}
	return errs
}

// Valid reports whether no field carries a message.
func (e Errors) Valid() bool {
	for _, msg := range e {
		if msg != "" {
			return false
		}
	}
	return true
}

// First returns the first non-empty message in field order.
func (e Errors) First() string {
	for _, field := range Fields {
		if msg := e[field]; msg != "" {
			return msg
		}
	}
	return ""
}

// Clone returns an independent copy.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
