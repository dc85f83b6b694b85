package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"ordantic/internal/common"
)

// Diagnostic codes.
const (
	CodeNotStruct        = "not_struct"
	CodeUnsupportedShape = "unsupported_fields"
	CodeUnexportedField  = "unexported_field"
	CodeGeneric          = "generic_type"
	CodeSkippedField     = "skipped_field"
	CodeUnknownModel     = "unknown_model"
	CodePackageLoad      = "package_load"
)

// Diagnostics holds all diagnostic information from analysis.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// TypeName is the declaration this relates to (if any).
	TypeName string
	// Pos locates the declaration in source.
	Pos token.Position
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// NewError returns an error-severity diagnostic attributed to pos.
func NewError(code, message, typeName string, pos token.Position) *Diagnostic {
	return &Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		TypeName: typeName,
		Pos:      pos,
	}
}

// Add appends d to the bucket matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName string, pos token.Position) {
	d.Add(*NewError(code, message, typeName, pos))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeName string, pos token.Position) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		TypeName: typeName,
		Pos:      pos,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typeName string, pos token.Position) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		TypeName: typeName,
		Pos:      pos,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Err returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Error implements error.
func (d *Diagnostic) Error() string {
	return d.String()
}

// String returns a formatted diagnostic string, prefixed with the source
// position when known: "models.go:12:6: [not_struct] only structs are supported".
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.TypeName != "" {
		msg = d.TypeName + ": " + msg
	}

	if d.Pos.IsValid() {
		return d.Pos.String() + ": " + msg
	}

	return msg
}
