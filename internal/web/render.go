package web

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/comparison"
)

// Renderer converts resolved comparison records into view models ready
// for the page templates: code panes highlighted, prose rendered as
// markdown.
type Renderer struct {
	hl *Highlighter
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with the given chroma style name.
func NewRenderer(styleName string) (*Renderer, error) {
	hl, err := NewHighlighter(styleName)
	if err != nil {
		return nil, err
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(styleName),
			),
		),
	)
	return &Renderer{hl: hl, md: md}, nil
}

// ComparisonView is a LanguageComparison prepared for rendering.
type ComparisonView struct {
	SourceID    string
	TargetID    string
	SourceName  string
	TargetName  string
	Syntax      []SyntaxView
	Pitfalls    []PitfallView
	Differences []DifferenceView
	Frameworks  []FrameworkView
}

// SyntaxView is one rendered syntax example.
type SyntaxView struct {
	Topic       string
	Description template.HTML
	SourceCode  template.HTML
	TargetCode  template.HTML
}

// PitfallView is one rendered pitfall. Absent examples render as empty.
type PitfallView struct {
	Title           string
	Description     template.HTML
	SourceExample   template.HTML
	TargetExample   template.HTML
	HasSource       bool
	HasTarget       bool
	CorrectApproach template.HTML
}

// DifferenceView is one rendered key difference.
type DifferenceView struct {
	Topic          string
	Description    template.HTML
	SourceApproach template.HTML
	TargetApproach template.HTML
}

// FrameworkView is one rendered framework comparison.
type FrameworkView struct {
	Category       string
	Source         FrameworkSideView
	Target         FrameworkSideView
	MigrationTips  []template.HTML
	CommonPitfalls []template.HTML
}

// FrameworkSideView is one side of a framework comparison.
type FrameworkSideView struct {
	Name         string
	SetupCode    template.HTML
	BasicExample template.HTML
	Strengths    []string
	Ecosystem    []string
}

// BuildView renders a resolved comparison into a view model. The record
// is read only; rendering never writes back into it.
func (r *Renderer) BuildView(sourceID, targetID string, c *comparison.LanguageComparison) *ComparisonView {
	v := &ComparisonView{
		SourceID:   sourceID,
		TargetID:   targetID,
		SourceName: c.SourceLanguage,
		TargetName: c.TargetLanguage,
	}

	for _, ex := range c.SyntaxExamples {
		v.Syntax = append(v.Syntax, SyntaxView{
			Topic:       ex.Topic,
			Description: r.markdown(ex.Description),
			SourceCode:  r.hl.Highlight(sourceID, ex.SourceCode),
			TargetCode:  r.hl.Highlight(targetID, ex.TargetCode),
		})
	}

	for _, p := range c.CommonPitfalls {
		pv := PitfallView{
			Title:           p.Title,
			Description:     r.markdown(p.Description),
			CorrectApproach: r.markdown(p.CorrectApproach),
		}
		if p.SourceExample != nil {
			pv.HasSource = true
			pv.SourceExample = r.hl.Highlight(sourceID, *p.SourceExample)
		}
		if p.TargetExample != nil {
			pv.HasTarget = true
			pv.TargetExample = r.hl.Highlight(targetID, *p.TargetExample)
		}
		v.Pitfalls = append(v.Pitfalls, pv)
	}

	for _, d := range c.KeyDifferences {
		v.Differences = append(v.Differences, DifferenceView{
			Topic:          d.Topic,
			Description:    r.markdown(d.Description),
			SourceApproach: r.markdown(d.SourceApproach),
			TargetApproach: r.markdown(d.TargetApproach),
		})
	}

	for _, fc := range c.FrameworkComparisons {
		fv := FrameworkView{
			Category: fc.Category,
			Source:   r.frameworkSide(sourceID, fc.SourceFramework),
			Target:   r.frameworkSide(targetID, fc.TargetFramework),
		}
		for _, tip := range fc.MigrationTips {
			fv.MigrationTips = append(fv.MigrationTips, r.markdown(tip))
		}
		for _, pit := range fc.CommonPitfalls {
			fv.CommonPitfalls = append(fv.CommonPitfalls, r.markdown(pit))
		}
		v.Frameworks = append(v.Frameworks, fv)
	}

	return v
}

func (r *Renderer) frameworkSide(langID string, f comparison.Framework) FrameworkSideView {
	return FrameworkSideView{
		Name:         f.Name,
		SetupCode:    r.hl.Highlight("bash", f.SetupCode),
		BasicExample: r.hl.Highlight(langID, f.BasicExample),
		Strengths:    f.Strengths,
		Ecosystem:    f.Ecosystem,
	}
}

// markdown renders a prose string to HTML. Empty input stays empty so
// templates can branch on it.
func (r *Renderer) markdown(text string) template.HTML {
	if text == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return plainBlock(text)
	}
	return template.HTML(buf.String())
}
