package web

import (
	"bytes"
	"html"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Highlighter renders code snippets to highlighted HTML. Results are
// cached: the dataset is static, so the same snippet is rendered for
// every page view of its pair.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
	cache     *lru.Cache[string, template.HTML]
}

// NewHighlighter creates a Highlighter using the named chroma style,
// falling back to the default style for unknown names.
func NewHighlighter(styleName string) (*Highlighter, error) {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	cache, err := lru.New[string, template.HTML](512)
	if err != nil {
		return nil, err
	}
	return &Highlighter{
		style:     style,
		formatter: chromahtml.New(chromahtml.TabWidth(4)),
		cache:     cache,
	}, nil
}

// Highlight renders code as highlighted HTML for the given language.
// Unknown languages and tokenizer failures degrade to an escaped
// plain-text block rather than an error.
func (h *Highlighter) Highlight(language, code string) template.HTML {
	code = strings.TrimRight(code, "\n")
	key := language + "\x00" + code
	if cached, ok := h.cache.Get(key); ok {
		return cached
	}

	out := h.render(language, code)
	h.cache.Add(key, out)
	return out
}

func (h *Highlighter) render(language, code string) template.HTML {
	lexer := lexers.Get(strings.ToLower(language))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainBlock(code)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return plainBlock(code)
	}
	return template.HTML(buf.String())
}

func plainBlock(code string) template.HTML {
	return template.HTML("<pre><code>" + html.EscapeString(code) + "</code></pre>")
}
