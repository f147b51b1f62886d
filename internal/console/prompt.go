package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	pkgerrors "stockledger/pkg/errors"
)

// prompter reads operator input one line at a time, echoing the prompt to
// the console writer first.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// promptText returns the next input line with surrounding whitespace removed.
// It returns io.EOF once the input stream is exhausted.
func (p *prompter) promptText(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *prompter) promptInt(prompt string) (int, error) {
	raw, err := p.promptText(prompt)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeInputFormat, "Please enter a valid integer.")
	}
	return value, nil
}

// promptID reads a record id. Negative input is clamped to zero, an id no
// row can have, so the lookup downstream reports the usual not-found error.
func (p *prompter) promptID(prompt string) (uint, error) {
	value, err := p.promptInt(prompt)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, nil
	}
	return uint(value), nil
}

// promptOptionalID behaves like promptID but treats a blank line as "none".
func (p *prompter) promptOptionalID(prompt string) (*uint, error) {
	raw, err := p.promptText(prompt)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeInputFormat, "Please enter a valid integer.")
	}
	id := uint(0)
	if value > 0 {
		id = uint(value)
	}
	return &id, nil
}

func (p *prompter) promptDecimal(prompt string) (decimal.Decimal, error) {
	raw, err := p.promptText(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeInputFormat, "Please enter a valid number.")
	}
	return value, nil
}
