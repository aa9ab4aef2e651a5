// Package lint checks .scad sources for Customizer compliance.
//
// The Customizer UI only understands a restricted dialect of OpenSCAD
// headers: parameters must sit before the first module or function,
// carry literal default values, and may be grouped into tabs with
// annotation comments describing their widgets. This linter flags
// departures from that dialect before they silently produce an empty
// customization panel.
package lint

import (
	"fmt"
	"os"
	"strings"
)

// Severity classifies a finding.
type Severity string

const (
	// SeverityError marks findings that break Customizer entirely.
	SeverityError Severity = "error"
	// SeverityWarning marks findings that degrade the Customizer UI.
	SeverityWarning Severity = "warning"
)

// Finding is a single lint result with its location.
type Finding struct {
	File     string
	Line     int
	Message  string
	Severity Severity
}

func (f Finding) String() string {
	return fmt.Sprintf("%s:%d: %s: %s", f.File, f.Line, f.Severity, f.Message)
}

// Result collects the findings for one file.
type Result struct {
	File     string
	Errors   []Finding
	Warnings []Finding
}

// Passed reports whether the file has no errors.
func (r Result) Passed() bool {
	return len(r.Errors) == 0
}

// File lints one .scad source.
func File(path string) Result {
	result := Result{File: path}

	content, err := os.ReadFile(path) //nolint:gosec // path comes from the model tree
	if err != nil {
		result.Errors = append(result.Errors, Finding{
			File: path, Line: 0, Severity: SeverityError,
			Message: "could not read file: " + err.Error(),
		})
		return result
	}

	st := &fileState{inParameterSection: true}

	for i, line := range strings.Split(string(content), "\n") {
		lintLine(path, i+1, line, st, &result)
	}

	if !st.foundAnyParam {
		result.Errors = append(result.Errors, Finding{
			File: path, Line: 1, Severity: SeverityError,
			Message: "no Customizer parameters found - file is not customizable",
		})
	}

	return result
}

// fileState tracks parsing state across lines.
type fileState struct {
	inParameterSection  bool // before the first module/function declaration
	inBlockComment      bool
	currentTab          string
	previousDescription string
	foundAnyTab         bool
	foundAnyParam       bool
	noTabWarningIssued  bool
}

func lintLine(path string, lineNum int, line string, st *fileState, result *Result) {
	stripped := strings.TrimSpace(line)

	if stripped == "" {
		st.previousDescription = ""
		return
	}

	if blockCommentStart.MatchString(stripped) {
		if m := tabDecl.FindStringSubmatch(stripped); m != nil {
			st.currentTab = m[1]
			st.foundAnyTab = true
			st.previousDescription = ""
			return
		}
		st.inBlockComment = true
		return
	}

	if st.inBlockComment {
		if blockCommentEnd.MatchString(stripped) {
			st.inBlockComment = false
		}
		return
	}

	if moduleDecl.MatchString(stripped) || functionDecl.MatchString(stripped) {
		st.inParameterSection = false
		st.previousDescription = ""
		return
	}

	if descriptionComment.MatchString(stripped) {
		if previewDirective.MatchString(stripped) {
			st.previousDescription = ""
			return
		}
		st.previousDescription = descriptionComment.FindStringSubmatch(stripped)[1]
		return
	}

	if specialVar.MatchString(stripped) {
		st.previousDescription = ""
		return
	}

	if m := varAssignment.FindStringSubmatch(stripped); m != nil {
		lintParameter(path, lineNum, m[1], m[2], m[3], st, result)
		st.previousDescription = ""
		return
	}

	st.previousDescription = ""
}

func lintParameter(path string, lineNum int, name, value, annotation string, st *fileState, result *Result) {
	// The Hidden tab is exempt from UI checks by definition.
	if st.currentTab == "Hidden" {
		return
	}

	st.foundAnyParam = true

	warn := func(msg string) {
		result.Warnings = append(result.Warnings, Finding{
			File: path, Line: lineNum, Severity: SeverityWarning, Message: msg,
		})
	}

	if !st.inParameterSection {
		warn(fmt.Sprintf("parameter %q is after module declarations (won't be customizable)", name))
	}

	if !st.foundAnyTab && !st.noTabWarningIssued {
		warn("parameters should be organized into tabs using /* [Tab Name] */")
		st.noTabWarningIssued = true
	}

	if st.previousDescription == "" {
		warn(fmt.Sprintf("parameter %q lacks a description comment", name))
	}

	validValue, reason := validDefaultValue(value)
	if !validValue {
		warn(fmt.Sprintf("parameter %q %s", name, reason))
	}

	if annotation != "" {
		if _, ok := parseAnnotation(annotation); !ok {
			result.Errors = append(result.Errors, Finding{
				File: path, Line: lineNum, Severity: SeverityError,
				Message: fmt.Sprintf("parameter %q has invalid annotation: %s", name, annotation),
			})
		}
	} else if validValue {
		warn(fmt.Sprintf("parameter %q has no UI annotation (will be a text input)", name))
	}
}
