package profile

import (
	"fmt"
	"strings"
)

// Fraud Detector variable types derived from column profiles.
const (
	VariableTypeNumeric      = "NUMERIC"
	VariableTypeCategory     = "CATEGORY"
	VariableTypeFreeFormText = "FREE_FORM_TEXT"
	VariableTypeIPAddress    = "IP_ADDRESS"
	VariableTypeEmailAddress = "EMAIL_ADDRESS"
)

// VariableDef is one event-variable definition for the remote service.
type VariableDef struct {
	Name         string `json:"name"`
	VariableType string `json:"variableType"`
	DataType     string `json:"dataType"`
	DefaultValue string `json:"defaultValue"`
}

// LabelDef is one label definition for the remote service.
type LabelDef struct {
	Name string `json:"name"`
}

// DetectorInputs bundles everything the detector-configuration step needs:
// the training data schema (model variables + label mapper) and the
// variable/label definitions to create remotely.
type DetectorInputs struct {
	ModelVariables []string            `json:"modelVariables"`
	LabelMapper    map[string][]string `json:"labelMapper"`
	Variables      []VariableDef       `json:"variables"`
	Labels         []LabelDef          `json:"labels"`
}

// DetectorInputs maps a Schema onto Fraud Detector configuration inputs.
//
// The label mapper assigns the minority label value to FRAUD and the
// majority value to LEGIT, matching how fraud labels skew in practice.
func (s *Schema) DetectorInputs() (DetectorInputs, error) {
	var label *ColumnProfile
	for i := range s.Columns {
		if s.Columns[i].Kind == KindLabel {
			label = &s.Columns[i]
			break
		}
	}
	if label == nil {
		return DetectorInputs{}, fmt.Errorf("profile: schema has no label column")
	}
	if len(label.LabelValues) < 2 {
		return DetectorInputs{}, fmt.Errorf("profile: label column %q has %d distinct value(s), need at least 2",
			label.Name, len(label.LabelValues))
	}

	in := DetectorInputs{
		LabelMapper: map[string][]string{
			"FRAUD": {label.LabelValues[0]},
			"LEGIT": {label.LabelValues[len(label.LabelValues)-1]},
		},
	}
	for _, v := range label.LabelValues {
		in.Labels = append(in.Labels, LabelDef{Name: v})
	}

	for _, cp := range s.Columns {
		if cp.Kind == KindLabel || cp.Kind == KindTimestamp || cp.Excluded() {
			continue
		}
		in.ModelVariables = append(in.ModelVariables, cp.Name)
		in.Variables = append(in.Variables, variableDef(cp))
	}
	return in, nil
}

func variableDef(cp ColumnProfile) VariableDef {
	v := VariableDef{
		Name:         cp.Name,
		VariableType: variableType(cp),
		DataType:     "STRING",
		DefaultValue: "<unknown>",
	}
	if v.VariableType == VariableTypeNumeric {
		v.DataType = "FLOAT"
		v.DefaultValue = "0.0"
	}
	return v
}

// variableType maps the inferred kind to a service variable type, with
// name-pattern overrides for IP and email columns.
func variableType(cp ColumnProfile) string {
	name := strings.ToLower(cp.Name)
	switch {
	case strings.Contains(name, "ipaddress"), strings.Contains(name, "ip_address"), strings.Contains(name, "ipaddr"):
		return VariableTypeIPAddress
	case strings.Contains(name, "email"):
		return VariableTypeEmailAddress
	}
	switch cp.Kind {
	case KindNumeric:
		return VariableTypeNumeric
	case KindFreeText:
		return VariableTypeFreeFormText
	default:
		return VariableTypeCategory
	}
}
