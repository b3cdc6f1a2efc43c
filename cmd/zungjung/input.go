package main

import (
	"bufio"
	"io"
	"strings"
)

// readHands reads one hand per line. Blank lines and lines starting with '#'
// are skipped.
func readHands(r io.Reader) ([]string, error) {
	var hands []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		hands = append(hands, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return hands, nil
}
