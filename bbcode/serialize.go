package bbcode

var kindToString = map[Kind]string{
	KindContent:          "content",
	KindNewline:          "newline",
	KindOpen:             "open",
	KindClose:            "close",
	KindEscapeDollar:     "escape-dollar",
	KindMathOpenDisplay:  "math-open-display",
	KindMathCloseDisplay: "math-close-display",
	KindMathOpenInline:   "math-open-inline",
	KindMathCloseInline:  "math-close-inline",
}

// SerializableToken is the JSON-friendly view of a [Token].
type SerializableToken struct {
	Kind       string              `json:"kind"`
	Name       string              `json:"name"`
	Raw        string              `json:"raw"`
	Attributes map[string]string   `json:"attributes,omitempty"`
	Children   []SerializableToken `json:"children,omitempty"`
	Closing    *SerializableToken  `json:"closing,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// Serialize converts the forest into its JSON-friendly form.
func Serialize(forest []*Token) []SerializableToken {
	out := make([]SerializableToken, 0, len(forest))

	for _, t := range forest {
		if t == nil {
			continue
		}
		out = append(out, serializeToken(t))
	}

	return out
}

func serializeToken(t *Token) SerializableToken {
	st := SerializableToken{
		Kind:       kindToString[t.Kind],
		Name:       t.Name,
		Raw:        t.Raw,
		Attributes: t.Attributes,
		Error:      t.Err,
	}

	if len(t.Children) > 0 {
		st.Children = Serialize(t.Children)
	}

	if t.Closing != nil {
		closing := serializeToken(t.Closing)
		st.Closing = &closing
	}

	return st
}
