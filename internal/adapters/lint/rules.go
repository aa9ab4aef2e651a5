package lint

import (
	"regexp"
	"strings"
)

var (
	moduleDecl   = regexp.MustCompile(`^\s*module\s+\w+\s*\(`)
	functionDecl = regexp.MustCompile(`^\s*function\s+\w+\s*\(`)

	// /* [Tab Name] */
	tabDecl = regexp.MustCompile(`^\s*/\*\s*\[([^\]]+)\]\s*\*/\s*$`)

	// name = value; // annotation
	varAssignment = regexp.MustCompile(`^\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*=\s*(.+?)\s*;\s*(?://\s*(.*))?$`)

	descriptionComment = regexp.MustCompile(`^\s*//\s*(.+)$`)
	blockCommentStart  = regexp.MustCompile(`^\s*/\*`)
	blockCommentEnd    = regexp.MustCompile(`\*/\s*$`)

	// // preview[view:X, tilt:Y]
	previewDirective = regexp.MustCompile(`^\s*//\s*preview\[`)

	// $fn, $fa, $fs and friends
	specialVar = regexp.MustCompile(`^\s*\$[a-z]+\s*=`)

	// [max], [min:max] or [min:step:max]
	sliderAnnotation = regexp.MustCompile(`^\[(\d+(?:\.\d+)?(?::\d+(?:\.\d+)?){0,2})\]$`)

	// [val1, val2, ...] or [val1:Label1, val2:Label2, ...]
	dropdownAnnotation = regexp.MustCompile(`^\[([^\[\]]+(?:,[^\[\]]+)*)\]$`)

	imageSurface = regexp.MustCompile(`^\[image_surface:\d+x\d+\]$`)
	imageArray   = regexp.MustCompile(`^\[image_array:\d+x\d+\]$`)
	drawPolygon  = regexp.MustCompile(`^\[draw_polygon:\d+x\d+\]$`)

	computedValue = regexp.MustCompile(`[+\-*/]|[a-zA-Z_][a-zA-Z0-9_]*\s*[+\-*/]`)

	numberLiteral  = regexp.MustCompile(`^-?\d+(?:\.\d+)?$`)
	stringLiteral  = regexp.MustCompile(`^"[^"]*"$`)
	identifier     = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	simpleArrayish = regexp.MustCompile(`^[\d.,\s\-"'a-zA-Z_:]+$`)
)

// parseAnnotation classifies a trailing parameter annotation. The second
// return is false when the annotation looks like one but matches no
// supported widget form.
func parseAnnotation(annotation string) (string, bool) {
	annotation = strings.TrimSpace(annotation)

	switch {
	case annotation == "":
		return "none", true
	case sliderAnnotation.MatchString(annotation):
		return "slider", true
	case imageSurface.MatchString(annotation):
		return "image_surface", true
	case imageArray.MatchString(annotation):
		return "image_array", true
	case drawPolygon.MatchString(annotation):
		return "draw_polygon", true
	case dropdownAnnotation.MatchString(annotation):
		return "dropdown", true
	case strings.HasPrefix(annotation, "["):
		return "unknown", false
	}
	return "none", true
}

// validDefaultValue reports whether a default value will render in the
// Customizer UI. Literals do; expressions and variable references do not.
func validDefaultValue(value string) (bool, string) {
	value = strings.TrimSpace(value)

	if numberLiteral.MatchString(value) || stringLiteral.MatchString(value) {
		return true, ""
	}
	if value == "true" || value == "false" {
		return true, ""
	}

	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		inner := value[1 : len(value)-1]
		if simpleArrayish.MatchString(inner) {
			return true, ""
		}
		if computedValue.MatchString(inner) {
			return false, "contains computed expression"
		}
		return true, ""
	}

	if computedValue.MatchString(value) {
		return false, "contains computed expression (won't appear in Customizer UI)"
	}
	if identifier.MatchString(value) {
		return false, "references another variable (won't appear in Customizer UI)"
	}
	return true, ""
}
