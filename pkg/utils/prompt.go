package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"

	"github.com/picogrid/polaris-tools/pkg/polaris"
)

// SkipPromptsEnv disables all interactive prompts (for CI/automation)
const SkipPromptsEnv = "POLARIS_SKIP_PROMPTS"

// PromptsAllowed reports whether prompts can be shown on this terminal
func PromptsAllowed() bool {
	if os.Getenv(SkipPromptsEnv) == "true" {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// EnvKey returns the environment variable that presets a parameter
func EnvKey(name string) string {
	return "POLARIS_" + strings.ToUpper(name)
}

// PromptForParameters asks for each parameter and returns the answers keyed
// by parameter name. POLARIS_<NAME> environment variables replace the
// offered default; with prompts disabled only those variables are returned.
func PromptForParameters(params []polaris.Parameter) (map[string]interface{}, error) {
	result := make(map[string]interface{})
	interactive := PromptsAllowed()

	for _, param := range params {
		if envValue := os.Getenv(EnvKey(param.Name)); envValue != "" {
			parsed, err := parseValue(envValue, param)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", EnvKey(param.Name), err)
			}
			param.Default = parsed
			if !interactive {
				result[param.Name] = parsed
				continue
			}
		}

		if !interactive {
			continue
		}

		value, err := promptForParameter(param)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", param.Name, err)
		}
		result[param.Name] = value
	}

	return result, nil
}

// SelectVariant asks which registered variant of a component kind to use
func SelectVariant(kind string, names []string, defaultName string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("no %s variants registered", kind)
	}

	prompt := &survey.Select{
		Message: fmt.Sprintf("Select %s:", kind),
		Options: names,
	}
	for _, name := range names {
		if name == defaultName {
			prompt.Default = defaultName
		}
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

func promptForParameter(param polaris.Parameter) (interface{}, error) {
	switch param.Type {
	case polaris.TypeInteger, polaris.TypeFloat, polaris.TypeVector, polaris.TypeFloatList:
		return promptInput(param)
	case polaris.TypeString:
		return promptString(param)
	case polaris.TypeBoolean:
		return promptBoolean(param)
	default:
		return nil, fmt.Errorf("unsupported parameter type: %s", param.Type)
	}
}

// parseValue parses user input according to the parameter type
func parseValue(value string, param polaris.Parameter) (interface{}, error) {
	value = strings.TrimSpace(value)
	switch param.Type {
	case polaris.TypeInteger:
		return strconv.Atoi(value)
	case polaris.TypeFloat:
		return strconv.ParseFloat(value, 64)
	case polaris.TypeString:
		return value, nil
	case polaris.TypeBoolean:
		return strconv.ParseBool(value)
	case polaris.TypeVector:
		values, err := parseFloatList(value)
		if err != nil {
			return nil, err
		}
		if len(values) != 3 {
			return nil, fmt.Errorf("expected 3 components, got %d", len(values))
		}
		return values, nil
	case polaris.TypeFloatList:
		return parseFloatList(value)
	default:
		return nil, fmt.Errorf("unsupported parameter type: %s", param.Type)
	}
}

// parseFloatList accepts "1,0,0", "1 0 0" and "[1, 0, 0]"
func parseFloatList(value string) ([]float64, error) {
	value = strings.Trim(strings.TrimSpace(value), "[]")
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", field, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// formatDefault renders a default value the way parseValue reads it back
func formatDefault(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case float64:
		return polaris.FormatFloat(val)
	case []float64:
		parts := make([]string, len(val))
		for i, f := range val {
			parts[i] = polaris.FormatFloat(f)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", val)
	}
}

func promptInput(param polaris.Parameter) (interface{}, error) {
	prompt := &survey.Input{
		Message: param.Description,
		Default: formatDefault(param.Default),
		Help:    fmt.Sprintf("%s (%s)", param.Name, param.Type),
	}

	var result string
	validator := func(ans interface{}) error {
		_, err := parseValue(fmt.Sprint(ans), param)
		return err
	}
	if err := survey.AskOne(prompt, &result, survey.WithValidator(survey.ComposeValidators(survey.Required, validator))); err != nil {
		return nil, err
	}

	return parseValue(result, param)
}

func promptString(param polaris.Parameter) (string, error) {
	defaultStr := formatDefault(param.Default)

	// If options are provided, use a select prompt
	if len(param.Options) > 0 {
		prompt := &survey.Select{
			Message: param.Description,
			Options: param.Options,
			Default: defaultStr,
		}

		var result string
		if err := survey.AskOne(prompt, &result); err != nil {
			return "", err
		}
		return result, nil
	}

	prompt := &survey.Input{
		Message: param.Description,
		Default: defaultStr,
	}

	var result string
	if err := survey.AskOne(prompt, &result, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	return result, nil
}

func promptBoolean(param polaris.Parameter) (bool, error) {
	defaultBool, _ := param.Default.(bool)

	prompt := &survey.Confirm{
		Message: param.Description,
		Default: defaultBool,
	}

	var result bool
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}

	return result, nil
}
