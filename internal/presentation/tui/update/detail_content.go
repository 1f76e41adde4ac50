package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/tesso57/jestr/internal/domain/joke"
)

const detailSectionDivider = "----------------------------------------"

func buildDetailContent(j joke.Joke, bookmarked bool) string {
	body := j.Body()
	if body == "" {
		body = "(This joke has no text.)"
	}

	flags := strings.Join(j.Flags.Names(), ", ")
	if flags == "" {
		flags = "none"
	}
	safe := "no"
	if j.Safe {
		safe = "yes"
	}
	lang := j.Lang
	if lang == "" {
		lang = "-"
	}

	meta := []string{
		fmt.Sprintf("id:       %d", j.ID),
		fmt.Sprintf("category: %s", j.Category),
		fmt.Sprintf("kind:     %s", j.Kind.Label()),
		fmt.Sprintf("lang:     %s", lang),
		fmt.Sprintf("safe:     %s", safe),
		fmt.Sprintf("flags:    %s", flags),
	}
	if bookmarked {
		meta = append(meta, "bookmarked")
	}

	return fmt.Sprintf("%s\n\n%s\n%s", body, detailSectionDivider, strings.Join(meta, "\n"))
}

func buildDetailContentForWidth(j joke.Joke, bookmarked bool, width int) string {
	content := buildDetailContent(j, bookmarked)
	if width <= 0 {
		return content
	}
	return ansi.Wrap(content, width, "")
}
