package seed

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/CrestNiraj12/quotebook/domain"
)

//go:embed quotes.yml
var defaultQuotes []byte

type file struct {
	Quotes []entry `yaml:"quotes"`
}

type entry struct {
	Text     string `yaml:"text"`
	Author   string `yaml:"author"`
	Category string `yaml:"category"`
}

// Default returns the quote collection bundled with the binary.
func Default() ([]domain.Quote, error) {
	return Parse(defaultQuotes)
}

// Load reads a YAML quote collection from path.
func Load(path string) ([]domain.Quote, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open quotes file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read quotes file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document of the form
//
//	quotes:
//	  - text: "..."
//	    author: "..."
//	    category: "..."
func Parse(data []byte) ([]domain.Quote, error) {
	var doc file
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse quotes yaml: %w", err)
	}

	out := make([]domain.Quote, 0, len(doc.Quotes))
	for i, e := range doc.Quotes {
		text := strings.TrimSpace(e.Text)
		if text == "" {
			return nil, fmt.Errorf("quote %d: %w", i+1, domain.ErrEmptyQuote)
		}
		out = append(out, domain.Quote{
			Text:         text,
			AuthorName:   strings.TrimSpace(e.Author),
			CategoryName: strings.ToLower(strings.TrimSpace(e.Category)),
		})
	}
	return out, nil
}
