package flatfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bankoffice/bankoffice/internal/domain"
)

// ReadAccounts parses the account master file from r. Reading stops at the
// end-of-file marker line. Any malformed line fails the whole read.
func ReadAccounts(r io.Reader) ([]*domain.Account, error) {
	scanner := bufio.NewScanner(r)

	var accounts []*domain.Account
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if isEndMarker(line) {
			break
		}

		account, err := ParseAccountLine(line)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	return accounts, nil
}

// WriteJournal writes every transaction in order, followed by the
// end-of-session terminator record. The terminator is written even when
// transactions is empty.
func WriteJournal(w io.Writer, transactions []domain.Transaction) error {
	for _, t := range transactions {
		if _, err := fmt.Fprintln(w, FormatTransaction(t)); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
	}

	if _, err := fmt.Fprintln(w, FormatTransaction(domain.EndOfSession())); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	return nil
}

// isEndMarker accepts both a bare marker line and a full-width record whose
// holder-name field carries the marker.
func isEndMarker(line string) bool {
	if line == EndOfFileMarker {
		return true
	}
	return len(line) >= nameEnd && strings.TrimRight(line[nameStart:nameEnd], " ") == EndOfFileMarker
}
