package app

import (
	"errors"
	"fmt"

	"github.com/umaima-fareed13/libman/internal/catalog"
	"github.com/umaima-fareed13/libman/internal/tui"
)

// runHub loops the interactive menu until the user quits. The session context
// lives across iterations, so the working set carries every add and remove
// without re-reading the store.
func runHub() error {
	for {
		ctx := tui.HubContext{
			Identity:  sess.Identity(),
			BookCount: len(sess.Books()),
		}

		action, err := tui.RunHub(ctx)
		if err != nil {
			return err
		}

		switch action {
		case "browse":
			if err := hubBrowse(); err != nil {
				return err
			}
		case "add":
			if err := hubAdd(); err != nil {
				return err
			}
		case "remove":
			if err := hubRemove(); err != nil {
				return err
			}
		case "stats":
			s := catalog.Stats(sess.Books())
			header("Library Statistics")
			printField("total", fmt.Sprintf("%d", s.Total))
			printField("read", fmt.Sprintf("%d", s.Read))
			printField("percent", fmt.Sprintf("%.2f%%", s.ReadPercentage))
			fmt.Println()
			if !promptContinue() {
				return nil
			}
		case "quit", "":
			return nil
		default:
			return fmt.Errorf("unknown action: %s", action)
		}
	}
}

func hubBrowse() error {
	books := sess.Books()
	if len(books) == 0 {
		warn("No books found. Add books to your collection!")
		return nil
	}
	_, err := tui.RunBookPicker(bookItems(books), "Library Collection")
	if err != nil && err.Error() != "canceled by user" {
		return err
	}
	return nil
}

func hubAdd() error {
	data, err := tui.RunAddForm()
	if err != nil {
		if err.Error() == "canceled" {
			return nil
		}
		return err
	}

	image := ""
	if data.CoverPath != "" {
		rel, err := coversMgr.StoreFile(data.CoverPath)
		if err != nil {
			warn("Could not sideload cover: %v", err)
		} else {
			image = rel
		}
	}

	book, err := addBook(catalog.Fields{
		Title:  data.Title,
		Author: data.Author,
		Year:   data.Year,
		Genre:  data.Genre,
		Read:   data.Read,
		Image:  image,
	})
	if err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			warn("Please fill in all fields: %v", err)
			return nil
		}
		return err
	}
	ok("%s added to the library", book.Title)
	return nil
}

func hubRemove() error {
	books := sess.Books()
	if len(books) == 0 {
		warn("No books to remove.")
		return nil
	}
	item, err := tui.RunBookPicker(bookItems(books), "Select a book to remove")
	if err != nil {
		if err.Error() == "canceled by user" {
			return nil
		}
		return err
	}
	n, err := removeBooks(item.Book.Title)
	if err != nil {
		return err
	}
	ok("%s removed from the library (%d record(s))", item.Book.Title, n)
	return nil
}

// promptContinue pauses after printing to the plain terminal so the output is
// readable before the alt-screen menu redraws over it.
func promptContinue() bool {
	fmt.Print("Press enter to return to the menu (q to quit): ")
	var resp string
	_, _ = fmt.Scanln(&resp)
	return resp != "q"
}
