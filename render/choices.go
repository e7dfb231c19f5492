package render

// Choice is a single select option. Label is the visible text, Value what
// the browser submits.
type Choice struct {
	Label string
	Value string
}

// Choices is an ordered option list. Order is preserved in the markup.
type Choices []Choice

// Values builds choices from a flat value list, using each value as its own
// label.
func Values(values ...string) Choices {
	choices := make(Choices, 0, len(values))
	for _, v := range values {
		choices = append(choices, Choice{Label: v, Value: v})
	}
	return choices
}

// Pair builds a single labeled choice. It exists mostly for templates, where
// composite literals are unavailable.
func Pair(label, value string) Choice {
	return Choice{Label: label, Value: value}
}

// List collects individual choices into an ordered option list, the paired
// counterpart to Values.
func List(choices ...Choice) Choices {
	return Choices(choices)
}
