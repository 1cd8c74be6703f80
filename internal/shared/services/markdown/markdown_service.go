// Package markdown renders user-authored ticket descriptions, review bodies
// and comments to sanitized HTML.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Service interface {
	ToHTML(markdown string) (string, error)
	ToHTMLSanitized(markdown string) (string, error)
	// Render is ToHTMLSanitized for templates; on conversion failure it
	// returns the escaped source.
	Render(markdown string) template.HTML
}

type service struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &service{
		md:     md,
		policy: policy,
	}
}

func (s *service) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

func (s *service) ToHTMLSanitized(markdown string) (string, error) {
	out, err := s.ToHTML(markdown)
	if err != nil {
		return "", err
	}
	return s.policy.Sanitize(out), nil
}

func (s *service) Render(markdown string) template.HTML {
	if markdown == "" {
		return ""
	}
	out, err := s.ToHTMLSanitized(markdown)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(markdown))
	}
	return template.HTML(out) //nolint:gosec // sanitized by bluemonday
}
