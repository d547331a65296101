package markup

import "fmt"
import "errors"
import "strings"

import "github.com/alecthomas/participle/v2"
import "github.com/alecthomas/participle/v2/lexer"

// Wrapped by errors caused by malformed markup.
var ErrSyntax = errors.New("markup syntax error")

var (
	markupLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Escaped", Pattern: `\\[\[\]\\]`},
		{Name: "Close", Pattern: `\[/\]`},
		{Name: "Tag", Pattern: `\[[^\[\]]*\]`},
		{Name: "Text", Pattern: `[^\[\\]+|\\`},
	})

	documentParser = participle.MustBuild[document](
		participle.Lexer(markupLexer),
	)
)

// Root AST node.
type document struct {
	Nodes []*node `parser:"@@*"`
}

type node struct {
	Text *textChunk `parser:"  @(Text | Escaped)"`
	Span *span      `parser:"| @@"`
}

type span struct {
	Pos lexer.Position `parser:""`
	Tag string         `parser:"@Tag"`
	Nodes []*node      `parser:"@@* Close"`
}

// A piece of text, unescaped on capture.
type textChunk string

// Implements participle.Capture.
func (self *textChunk) Capture(values []string) error {
	var builder strings.Builder
	for _, value := range values {
		if len(value) == 2 && value[0] == '\\' {
			builder.WriteByte(value[1])
		} else {
			builder.WriteString(value)
		}
	}
	*self = textChunk(builder.String())
	return nil
}

// Returns the attributes of the tag, without the brackets.
func (self *span) attributes() []string {
	return strings.Fields(self.Tag[1 : len(self.Tag) - 1])
}

func parseDocument(input string) (*document, error) {
	doc, err := documentParser.ParseString("", input)
	if err != nil { return nil, fmt.Errorf("%w: %w", ErrSyntax, err) }
	return doc, nil
}
