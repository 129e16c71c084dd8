package prompt

import (
	"fmt"
	"strings"
)

const simpleTemplate = "Write a basic explanation of this %s code:\n\n%s"

const detailedTemplate = `
Generate well-structured, developer-friendly documentation for the following %s code.

- Describe its purpose and major components
- Highlight logic, functions, or unique constructs
- Explain inputs and outputs
- Mention key libraries or dependencies
- Use Markdown formatting with bullet points and headers if helpful

Code:
%s
`

const expertTemplate = `
You are a senior software architect reviewing this %s code.

Write highly technical documentation that explains:

- Architecture, structure, and data flow
- Performance considerations or edge cases
- Dependency choices and alternative approaches
- Input/output handling and configurability
- Potential enhancements or scalability concerns

Respond in well-formatted Markdown.

Code:
%s
`

const (
	dependencyTemplate = "Generate a list of dependencies or packages used in this %s code:\n\n%s"
	hardcodingTemplate = "Remove all hardcoded values from this %s code and replace them with variables or configuration constants:\n\n%s"
)

// returns the documentation prompt for the given depth.
// a depth outside the known set returns code unchanged
func BuildPrompt(language Language, depth Depth, code string) string {
	switch depth {
	case Simple:
		return fmt.Sprintf(simpleTemplate, language, code)
	case Detailed:
		return fmt.Sprintf(detailedTemplate, language, code)
	case Expert:
		return fmt.Sprintf(expertTemplate, language, code)
	}

	return code
}

func DependencyPrompt(language Language, code string) string {
	return fmt.Sprintf(dependencyTemplate, language, code)
}

func HardcodingPrompt(language Language, code string) string {
	return fmt.Sprintf(hardcodingTemplate, language, code)
}

// returns the persona sent as the system turn for an action
func SystemMessage(action Action, language Language) string {
	switch action {
	case GenerateDocs:
		return fmt.Sprintf("You are an expert %s developer writing documentation.", language)
	case GenerateDeps:
		return fmt.Sprintf("You are a %s expert generating a dependency list.", language)
	case RemoveHardcoding:
		return fmt.Sprintf("You are a %s developer refactoring code to remove hardcoded values.", language)
	}

	return ""
}

// assembles the system and user messages for a model-calling action
func Build(action Action, language Language, depth Depth, code string) (Prompt, error) {
	var user string

	switch action {
	case GenerateDocs:
		user = BuildPrompt(language, depth, code)
	case GenerateDeps:
		user = DependencyPrompt(language, code)
	case RemoveHardcoding:
		user = HardcodingPrompt(language, code)
	case DownloadDocs:
		return Prompt{}, fmt.Errorf("%s: %w", action, ErrNoPrompt)
	default:
		return Prompt{}, fmt.Errorf("%q: %w", action, ErrUnknownAction)
	}

	return Prompt{
		System: SystemMessage(action, language),
		User:   user,
	}, nil
}

// reports whether code has any non-whitespace content
func IsBlank(code string) bool {
	return strings.TrimSpace(code) == ""
}

// returns the download extension for cleaned code: the first two
// characters of the lowercased language name ("py", "r", "ju", "ja")
func Extension(language Language) string {
	lower := []rune(strings.ToLower(string(language)))
	if len(lower) > 2 {
		lower = lower[:2]
	}

	return string(lower)
}
