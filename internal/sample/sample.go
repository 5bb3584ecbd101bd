// Package sample embeds a small question bank that loads when no source is configured.
package sample

import (
	"bytes"
	_ "embed"
	"io"
)

// Name is the source name reported for the embedded bank.
const Name = "questions_sample.csv"

//go:embed questions_sample.csv
var questionsCSV []byte

// Open returns a reader over the embedded CSV.
func Open() io.Reader {
	return bytes.NewReader(questionsCSV)
}
