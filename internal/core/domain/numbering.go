package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
)

// DocumentNumberDigits is the fixed width of the numeric part of a document number.
const DocumentNumberDigits = 6

const maxDocumentSequence = 999999

// FormatDocumentNumber renders a sequence as {prefix}{zero padded sequence}.
func FormatDocumentNumber(t DocumentType, sequence int) string {
	return fmt.Sprintf("%s%0*d", t.Prefix(), DocumentNumberDigits, sequence)
}

// NextDocumentNumber derives the number following latest, the greatest existing
// number for type t. An empty latest yields the first number of the series.
func NextDocumentNumber(t DocumentType, latest string) (string, error) {
	if latest == "" {
		return FormatDocumentNumber(t, 1), nil
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, latest)
	if digits == "" {
		return "", fmt.Errorf("%w: latest document number %q has no numeric part", apperrors.ErrInternal, latest)
	}
	seq, err := strconv.Atoi(digits)
	if err != nil {
		return "", fmt.Errorf("%w: latest document number %q: %v", apperrors.ErrInternal, latest, err)
	}
	if seq >= maxDocumentSequence {
		return "", fmt.Errorf("%w: %s document numbers exhausted", apperrors.ErrConflict, t.Prefix())
	}
	return FormatDocumentNumber(t, seq+1), nil
}

// NormalizeDocumentNumber turns free-form user input into the canonical number
// for a document of type t. Non alphanumerics are dropped and letters upper-cased;
// a bare number gets the type prefix; a prefixed number must carry t's prefix.
func NormalizeDocumentNumber(t DocumentType, input string) (string, error) {
	var b strings.Builder
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return "", apperrors.NewFieldError(apperrors.ErrInvalidFormat, "documentNumber", input, "document number is empty")
	}

	numPart := cleaned
	if !isDigits(cleaned) {
		if !strings.HasPrefix(cleaned, t.Prefix()) {
			return "", apperrors.NewFieldError(apperrors.ErrInvalidFormat, "documentNumber", input, "document number must start with "+t.Prefix())
		}
		numPart = cleaned[len(t.Prefix()):]
		if !isDigits(numPart) {
			return "", apperrors.NewFieldError(apperrors.ErrInvalidFormat, "documentNumber", input, "document number must end with digits")
		}
	}
	if len(numPart) > DocumentNumberDigits {
		numPart = strings.TrimLeft(numPart, "0")
		if len(numPart) > DocumentNumberDigits {
			return "", apperrors.NewFieldError(apperrors.ErrInvalidFormat, "documentNumber", input, fmt.Sprintf("document number must have at most %d digits", DocumentNumberDigits))
		}
	}
	return t.Prefix() + strings.Repeat("0", DocumentNumberDigits-len(numPart)) + numPart, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
