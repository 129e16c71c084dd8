package assistant

import "fmt"

// cosmetic presentation variant
type Style string

const (
	StylePlain Style = "plain"
	StyleEmoji Style = "emoji"
)

// user-facing strings for one presentation style
type Labels struct {
	PageTitle        string
	CodeInput        string // formatted with the language name
	Disclaimer       string
	GenerateDocs     string
	DownloadDocs     string
	GenerateDeps     string
	RemoveHardcoding string
	DarkMode         string
	Instructions     string

	DocsHeading      string
	DepsHeading      string // formatted with the language name
	CleanedHeading   string
	HardcodingNotice string
	DownloadMarkdown string
	DownloadDeps     string
	DownloadCleaned  string
}

const instructions = `Welcome to Doctor, your AI-powered code doc generator.

1. Paste your code into the text area.
2. Choose your programming language.
3. Choose your documentation depth.
4. Click 'Generate Documentation' to see AI-generated docs.
5. Use the sidebar buttons to:
   - Download a .md file
   - Generate a list of dependencies
   - Remove hardcoded values
6. Enable dark mode for a more comfortable view.

Note: AI can make mistakes. Review generated content before using.`

var plainLabels = Labels{
	PageTitle:        "Generate Code Documentation",
	CodeInput:        "Paste your %s code here:",
	Disclaimer:       "AI can make mistakes. Please review all generated documentation before using it in production.",
	GenerateDocs:     "Generate Documentation",
	DownloadDocs:     "Download .md",
	GenerateDeps:     "Generate requirements.txt",
	RemoveHardcoding: "Remove Hardcoding",
	DarkMode:         "Dark Mode",
	Instructions:     instructions,

	DocsHeading:      "Generated Documentation",
	DepsHeading:      "Dependencies (%s)",
	CleanedHeading:   "Cleaned Code (No Hardcoding)",
	HardcodingNotice: "Removing hardcoded variables may change your code behavior. Review carefully.",
	DownloadMarkdown: "Download Markdown",
	DownloadDeps:     "Download",
	DownloadCleaned:  "Download Cleaned Code",
}

var emojiLabels = Labels{
	PageTitle:        "🩺 Generate Code Documentation",
	CodeInput:        "📋 Paste your %s code here:",
	Disclaimer:       "⚠️ AI can make mistakes. Please review all generated documentation before using it in production.",
	GenerateDocs:     "🚀 Generate Documentation",
	DownloadDocs:     "⬇️ Download .md",
	GenerateDeps:     "📦 Generate requirements.txt",
	RemoveHardcoding: "🧹 Remove Hardcoding",
	DarkMode:         "🌙 Dark Mode",
	Instructions:     instructions,

	DocsHeading:      "📄 Generated Documentation",
	DepsHeading:      "📦 Dependencies (%s)",
	CleanedHeading:   "🧹 Cleaned Code (No Hardcoding)",
	HardcodingNotice: "⚠️ Removing hardcoded variables may change your code behavior. Review carefully.",
	DownloadMarkdown: "⬇️ Download Markdown",
	DownloadDeps:     "⬇️ Download",
	DownloadCleaned:  "⬇️ Download Cleaned Code",
}

// returns the label set for a style; unknown styles fall back to plain
func LabelsFor(style Style) Labels {
	if style == StyleEmoji {
		return emojiLabels
	}

	return plainLabels
}

func (l Labels) CodeInputFor(language string) string {
	if language == "" {
		language = "source"
	}

	return fmt.Sprintf(l.CodeInput, language)
}
