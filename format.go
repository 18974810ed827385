package localization

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// placeholderPattern matches positional placeholders of the form {N}.
var placeholderPattern = regexp.MustCompile(`\{(\d+)\}`)

// Segment is one element of a formatted template: either a run of literal
// template text or a value substituted for a positional placeholder.
type Segment struct {
	// Value holds the substituted value when Literal is false.
	Value any
	// Text holds the literal template text when Literal is true.
	Text string
	// Key is a synthesized positional identifier, unique within the
	// returned sequence, letting a rendering layer treat repeated
	// placeholders as distinct list items.
	Key     string
	Literal bool
}

// Composite marks a substituted value whose children should be emitted as
// distinct segments rather than as a single opaque value. It is implemented
// by the caller for renderable container values.
type Composite interface {
	Children() []any
}

// Format substitutes positional {N} placeholders in the template with the
// corresponding values, preserving surrounding literal text. The result is
// an ordered sequence of segments for a rendering layer to concatenate or
// render as a node list; the formatter itself does not stringify values.
//
// Values implementing Composite are flattened: each child becomes its own
// segment with a distinct key. A placeholder index with no corresponding
// value produces a nil-valued segment; callers must supply exactly as many
// values as the template references.
func Format(template string, values ...any) []Segment {
	var segments []Segment
	last := 0

	for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(template, -1) {
		if lit := template[last:loc[0]]; lit != "" {
			segments = append(segments, Segment{
				Text:    lit,
				Key:     strconv.Itoa(len(segments)),
				Literal: true,
			})
		}
		last = loc[1]

		idx, err := strconv.Atoi(template[loc[2]:loc[3]])
		if err != nil {
			// Unreachable: the pattern only matches digits.
			continue
		}
		var value any
		if idx < len(values) {
			value = values[idx]
		}

		if comp, ok := value.(Composite); ok {
			pos := len(segments)
			for i, child := range comp.Children() {
				segments = append(segments, Segment{
					Value: child,
					Key:   strconv.Itoa(pos) + "." + strconv.Itoa(i),
				})
			}
			continue
		}
		segments = append(segments, Segment{
			Value: value,
			Key:   strconv.Itoa(len(segments)),
		})
	}

	if lit := template[last:]; lit != "" {
		segments = append(segments, Segment{
			Text:    lit,
			Key:     strconv.Itoa(len(segments)),
			Literal: true,
		})
	}

	return segments
}

// FormatString substitutes positional {N} placeholders and concatenates the
// resulting segments into a single string, rendering substituted values with
// fmt. Convenience for callers that render plain text.
func FormatString(template string, values ...any) string {
	var b strings.Builder
	for _, seg := range Format(template, values...) {
		if seg.Literal {
			b.WriteString(seg.Text)
			continue
		}
		fmt.Fprintf(&b, "%v", seg.Value)
	}
	return b.String()
}
