/* utils.go
 * Utility functions used across the application
 */

package main

import (
	"github.com/go-andiamo/splitter"
)

// parseGamesList splits the -games flag into game type tags. We use splitter
// here instead of strings.Fields so a quoted entry survives as one tag.
// Preconditions: Receives the raw flag value
// Postconditions: Returns the list of tags with empty entries dropped, or an error if the value cannot be split
func parseGamesList(value string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(value)
	if err != nil {
		return nil, err
	}
	var tags []string
	for _, part := range parts {
		if part == "" {
			continue
		}
		tags = append(tags, part)
	}
	return tags, nil
}
