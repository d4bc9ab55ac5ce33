package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/query"
	apperrors "github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/logger"
)

const menuText = `
    Select from the menu:
        c: display categories
        f: find images by category
        i: find max instances of categories
        m: find max number of images of categories
        w: display the top ten words in captions
        q: quit

    Choice: `

const menuOptions = "cfimwq"

// errInputClosed ends the menu when stdin runs out.
var errInputClosed = errors.New("input closed")

func (a *app) newMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive query menu",
		Long: `Run the interactive query menu. When --annotations or --categories is not
given the menu asks for the file names first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithCommand(cmd.Context(), cmd.Name())
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			fmt.Fprintln(p.out, "Images")
			fmt.Fprintln(p.out)

			var err error
			if a.cfg.Data.AnnotationsPath == "" {
				if a.cfg.Data.AnnotationsPath, err = p.askFile("JSON image"); err != nil {
					return nil
				}
			}
			if a.cfg.Data.CategoriesPath == "" {
				if a.cfg.Data.CategoriesPath, err = p.askFile("category"); err != nil {
					return nil
				}
			}
			svc, err := a.service(ctx)
			if err != nil {
				return err
			}
			m := &menu{svc: svc, p: p}
			return m.run(ctx)
		},
	}
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// askFile asks for a file name until one that exists is given.
func (p *prompter) askFile(kind string) (string, error) {
	for {
		name, err := p.ask(fmt.Sprintf("Enter a %s file name: ", kind))
		if err != nil {
			return "", err
		}
		if info, statErr := os.Stat(name); statErr == nil && !info.IsDir() {
			return name, nil
		}
		fmt.Fprintln(p.out, "File not found.  Try again.")
	}
}

type menu struct {
	svc *query.Service
	p   *prompter
}

// run dispatches menu choices until the user quits or input ends.
func (m *menu) run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	for {
		choice, err := m.option()
		if errors.Is(err, errInputClosed) {
			break
		}
		if err != nil {
			return err
		}
		if choice == "q" {
			break
		}
		log.Debug("menu choice", "option", choice)
		err = m.dispatch(choice)
		if errors.Is(err, errInputClosed) {
			break
		}
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(m.p.out)
	fmt.Fprintln(m.p.out, "Thank you for running my code.")
	return nil
}

func (m *menu) option() (string, error) {
	for {
		choice, err := m.p.ask(menuText)
		if err != nil {
			return "", err
		}
		choice = strings.ToLower(choice)
		if len(choice) == 1 && strings.Contains(menuOptions, choice) {
			return choice, nil
		}
		fmt.Fprintln(m.p.out, "Incorrect choice.  Please try again.")
	}
}

func (m *menu) dispatch(choice string) error {
	out := m.p.out
	switch choice {
	case "c":
		query.FormatCategories(out, m.svc.ListCategories())
	case "f":
		return m.findImages()
	case "i":
		result, err := m.svc.MaxOccurrences()
		if err != nil {
			return reportQueryError(out, err)
		}
		query.FormatMaxOccurrences(out, result)
	case "m":
		result, err := m.svc.MaxDistinctImages()
		if err != nil {
			return reportQueryError(out, err)
		}
		query.FormatMaxImages(out, result)
	case "w":
		return m.topWords()
	}
	return nil
}

func (m *menu) findImages() error {
	query.FormatCategories(m.p.out, m.svc.ListCategories())
	for {
		name, err := m.p.ask("Choose a category from the list above: ")
		if err != nil {
			return err
		}
		keys, err := m.svc.ImagesForCategory(name)
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			fmt.Fprintln(m.p.out, "Incorrect category choice.")
			continue
		}
		if err != nil {
			return err
		}
		query.FormatImages(m.p.out, name, keys)
		return nil
	}
}

func (m *menu) topWords() error {
	for {
		raw, err := m.p.ask("Enter number of desired words: ")
		if err != nil {
			return err
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			fmt.Fprintln(m.p.out, "Incorrect number.  Please try again.")
			continue
		}
		words, err := m.svc.TopWords(n)
		if errors.Is(err, apperrors.ErrInvalidCount) {
			fmt.Fprintln(m.p.out, "Incorrect number.  Please try again.")
			continue
		}
		if err != nil {
			return err
		}
		query.FormatTopWords(m.p.out, n, words)
		return nil
	}
}

// reportQueryError prints recoverable query failures and returns the rest.
func reportQueryError(w io.Writer, err error) error {
	if errors.Is(err, apperrors.ErrEmptyResult) {
		fmt.Fprintln(w, "No categories found in the corpus.")
		return nil
	}
	return err
}
