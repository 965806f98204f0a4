package action

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidMetadata is wrapped by every CreateMetadata validation failure.
var ErrInvalidMetadata = errors.New("invalid action metadata")

var validate = validator.New(validator.WithRequiredStructEnabled())

// CreateMetadata validates a descriptor and returns it ready to be served.
// All violations are reported in a single error.
func CreateMetadata(m Metadata) (*Metadata, error) {
	var problems []string

	if err := validate.Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	for i, a := range m.Actions {
		if a.Chains.Source != "" {
			if _, err := LookupChain(a.Chains.Source); err != nil {
				problems = append(problems, fmt.Sprintf("actions[%d].chains.source: %v", i, err))
			}
		}
		if a.Chains.Destination != "" {
			if _, err := LookupChain(a.Chains.Destination); err != nil {
				problems = append(problems, fmt.Sprintf("actions[%d].chains.destination: %v", i, err))
			}
		}

		seen := make(map[string]struct{}, len(a.Params))
		for j, p := range a.Params {
			// required_if only rejects a nil slice.
			if (p.Type == ParamSelect || p.Type == ParamRadio) && p.Options != nil && len(p.Options) == 0 {
				problems = append(problems, fmt.Sprintf("actions[%d].params[%d].options: at least one option is required", i, j))
			}
			if p.Name == "" {
				continue
			}
			if _, dup := seen[p.Name]; dup {
				problems = append(problems, fmt.Sprintf("actions[%d].params: duplicate name %q", i, p.Name))
			}
			seen[p.Name] = struct{}{}
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMetadata, strings.Join(problems, "; "))
	}
	return &m, nil
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Metadata.")
	if fe.Param() != "" {
		return fmt.Sprintf("%s: failed %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s: failed %s", field, fe.Tag())
}
