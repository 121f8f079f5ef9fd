package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/nixinit/nixinit/internal/foundation"
)

// ErrInputClosed is returned when input ends before a language is chosen.
var ErrInputClosed = errors.New("input closed before a language was selected")

// Prompt messages.
const (
	promptFormat   = "Please choose a language from the following: %s\n"
	invalidMessage = "Invalid input. Please try again."
)

// promptLanguage asks for a language on out and reads answers from in
// until one matches the catalog. Unrecognized answers re-prompt without
// limit.
func promptLanguage(in io.Reader, out io.Writer) (foundation.SupportedLanguage, error) {
	reader := bufio.NewReader(in)
	for {
		_, _ = fmt.Fprintf(out, promptFormat, foundation.DisplayList())

		line, readErr := reader.ReadString('\n')
		if lang, ok := foundation.ParseLanguage(line); ok {
			return lang, nil
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return "", ErrInputClosed
			}
			return "", fmt.Errorf("read input: %w", readErr)
		}

		_, _ = fmt.Fprintln(out, invalidMessage)
	}
}
