// SPDX-License-Identifier: MIT

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	LexerNotRegisteredId Id = iota + 1
	SourceFileNotFoundId
	ManifestInvalidId
	UnknownStyleId
	UnknownFormatterId
	ConfigLoadFailedId
	ServeStartFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown under "See also"
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	lexerNotRegisteredIssue = &Issue{
		id: LexerNotRegisteredId,
		mdMsg: `
# Lexer not registered!

The requested language identifier does not resolve to any lexer in the
chroma registry.

## Things you can try:
- List the entry points this plugin provides:
~~~
$ dymslex info
~~~

- Verify the registration is intact:
~~~
$ dymslex check
~~~

- Check the identifier for typos ('dyms' is the only identifier this
  plugin registers)`,
	}

	sourceFileNotFoundIssue = &Issue{
		id: SourceFileNotFoundId,
		mdMsg: `
# Source file not found!

The file you asked to highlight does not exist or is not readable.

## Things you can try:
- Check the path for typos
- Pipe the source via stdin instead:
~~~
$ cat program.dyms | dymslex highlight
~~~`,
	}

	manifestInvalidIssue = &Issue{
		id: ManifestInvalidId,
		mdMsg: `
# Invalid plugin manifest!

The plugin manifest failed schema validation.

## Common issues:
- Version is not a three-component semantic version (e.g. "0.2.0")
- Empty entry_points table
- Malformed host constraint (expected forms: ">= 2.0", "== 2.14")

## Things you can try:
- Check the error message above for the offending field
- Compare against the embedded manifest:
~~~
$ dymslex info
~~~`,
	}

	unknownStyleIssue = &Issue{
		id: UnknownStyleId,
		mdMsg: `
# Unknown style!

The requested color style is not present in the chroma style registry.

## Things you can try:
- List the available styles:
~~~
$ dymslex highlight --list-styles
~~~

- Use a common style such as 'monokai', 'dracula', or 'github'`,
	}

	unknownFormatterIssue = &Issue{
		id: UnknownFormatterId,
		mdMsg: `
# Unknown formatter!

The requested output formatter is not present in the chroma formatter
registry.

## Available formatters include:
- **terminal256** (default for TTY output)
- **terminal16m** (truecolor terminals)
- **html**
- **json**
- **svg**
- **tokens** (debug token dump)

## Things you can try:
- List the available formatters:
~~~
$ dymslex highlight --list-formatters
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the dymslex configuration file.

## Configuration file locations:
- Linux: ~/.config/dymslex/config.cue
- macOS: ~/Library/Application Support/dymslex/config.cue
- Windows: %APPDATA%\dymslex\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ dymslex config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
default_style: "monokai"
default_formatter: "terminal256"

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	serveStartFailedIssue = &Issue{
		id: ServeStartFailedId,
		mdMsg: `
# Failed to start the SSH server!

The highlight server could not bind or start.

## Common causes:
- Port already in use
- Binding to a privileged port (< 1024) without permission
- Invalid host key path

## Things you can try:
- Pick a different port:
~~~
$ dymslex serve --port 2222
~~~

- Check what is listening on the port:
~~~
$ ss -tlnp | grep <port>
~~~`,
	}

	issues = map[Id]*Issue{
		lexerNotRegisteredIssue.Id(): lexerNotRegisteredIssue,
		sourceFileNotFoundIssue.Id(): sourceFileNotFoundIssue,
		manifestInvalidIssue.Id():    manifestInvalidIssue,
		unknownStyleIssue.Id():       unknownStyleIssue,
		unknownFormatterIssue.Id():   unknownFormatterIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		serveStartFailedIssue.Id():   serveStartFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
