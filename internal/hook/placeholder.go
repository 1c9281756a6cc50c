package hook

import "strings"

// Placeholder is a token recognised in hook templates.
type Placeholder string

const (
	// PlaceholderFile expands to the double-quoted artifact path.
	PlaceholderFile Placeholder = "%f"
	// PlaceholderOperation expands to the operation name, e.g. "apply".
	PlaceholderOperation Placeholder = "%o"
)

// Operation is the command a hook runs on behalf of.
type Operation string

const (
	OperationApply Operation = "apply"
	OperationInit  Operation = "init"
)

// Substitute expands the known placeholders in template in a single pass, so
// expanded values are never expanded again. Unknown "%x" sequences are kept.
func Substitute(template, artifactPath string, op Operation) string {
	return strings.NewReplacer(
		string(PlaceholderFile), `"`+artifactPath+`"`,
		string(PlaceholderOperation), string(op),
	).Replace(template)
}
