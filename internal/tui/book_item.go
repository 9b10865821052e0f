package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"

	"github.com/umaima-fareed13/libman/internal/catalog"
)

// BookItem wraps a catalog record for list display.
type BookItem struct {
	Book     catalog.Book
	HasCover bool
}

// FilterValue implements list.Item.
func (b BookItem) FilterValue() string {
	return b.Book.Title + " " + b.Book.Author
}

// renderBookItem renders one book line: title, author/year, genre, read mark.
func renderBookItem(w io.Writer, m list.Model, index int, item list.Item) {
	bookItem, ok := item.(BookItem)
	if !ok {
		return
	}
	b := bookItem.Book

	title := fmt.Sprintf("%-32s", truncate(b.Title, 32))
	byline := fmt.Sprintf("%s (%s)", b.Author, b.Year)
	genre := StyleGenre.Render("[" + b.Genre + "]")

	mark := "  "
	if b.Read {
		mark = StyleRead.Render("✓ ")
	}
	cover := ""
	if bookItem.HasCover {
		cover = StyleHelp.Render(" ◈")
	}

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+mark+title+" "+byline+" ")+genre+cover)
	} else {
		_, _ = fmt.Fprint(w, "  "+mark+StyleNormal.Render(title)+" "+StyleHelp.Render(byline)+" "+genre+cover)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
