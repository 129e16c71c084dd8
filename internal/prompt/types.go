package prompt

import "errors"

// programming language of the pasted code
type Language string

// verbosity tier of generated documentation
type Depth string

// user action that triggers a request cycle
type Action string

const (
	Python     Language = "Python"
	R          Language = "R"
	Julia      Language = "Julia"
	JavaScript Language = "JavaScript"
)

const (
	Simple   Depth = "Simple"
	Detailed Depth = "Detailed"
	Expert   Depth = "Expert"

	DefaultDepth = Detailed
)

const (
	GenerateDocs     Action = "docs"
	GenerateDeps     Action = "dependencies"
	RemoveHardcoding Action = "hardcoding"
	DownloadDocs     Action = "download"
)

var (
	ErrUnknownLanguage = errors.New("unknown language")
	ErrUnknownDepth    = errors.New("unknown depth")
	ErrUnknownAction   = errors.New("unknown action")
	ErrNoPrompt        = errors.New("action does not send a prompt")
)

// the pair of messages sent to the model for one action
type Prompt struct {
	System string
	User   string
}

var (
	languages = []Language{Python, R, Julia, JavaScript}
	depths    = []Depth{Simple, Detailed, Expert}
	actions   = []Action{GenerateDocs, GenerateDeps, RemoveHardcoding, DownloadDocs}
)
