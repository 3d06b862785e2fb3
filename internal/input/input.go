// Package input turns operator text into simulation arguments.
package input

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// ParsePages splits raw on whitespace and commas. Order and duplicates are kept.
func ParsePages(raw string) []util.PageRef {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	pages := make([]util.PageRef, 0, len(fields))
	for _, f := range fields {
		pages = append(pages, util.PageRef(f))
	}
	return pages
}

// ReadPages parses every token in r as one reference string.
func ReadPages(r io.Reader) ([]util.PageRef, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("[input] [ReadPages] read reference: %w", err)
	}
	return ParsePages(string(data)), nil
}

// ValidatePages rejects an empty reference string.
func ValidatePages(pages []util.PageRef) error {
	if len(pages) == 0 {
		return util.ErrEmptyReference
	}
	return nil
}

// ParsePositive parses raw as a positive integer. errInvalid is returned, wrapped,
// for anything else.
func ParsePositive(raw string, errInvalid error) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", raw, errInvalid)
	}
	if err := CheckPositive(n, errInvalid); err != nil {
		return 0, err
	}
	return n, nil
}

// CheckPositive returns errInvalid, wrapped, when n < 1.
func CheckPositive(n int, errInvalid error) error {
	if n <= 0 {
		return fmt.Errorf("%d: %w", n, errInvalid)
	}
	return nil
}
