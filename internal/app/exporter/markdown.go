package exporter

import (
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/sleroq/zoho-to-joplin/internal/infra/zohohtml"
	"golang.org/x/net/html"
)

// newMarkdownConverter uses ATX headings and renders tables as GFM tables,
// which keeps images inside cells as images. Escaping is off so the task
// list prefixes written by filterTodos survive.
func newMarkdownConverter() *converter.Converter {
	return converter.NewConverter(
		converter.WithEscapeMode(converter.EscapeModeDisabled),
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
			),
			table.NewTablePlugin(),
			strikethrough.NewStrikethroughPlugin(),
		),
	)
}

func convertBody(conv *converter.Converter, body *html.Node) (string, error) {
	content, err := zohohtml.RenderChildren(body)
	if err != nil {
		return "", fmt.Errorf("render body: %w", err)
	}
	md, err := conv.ConvertString(content)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return md, nil
}
