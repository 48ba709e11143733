package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrestNiraj12/quotebook/domain"
)

func TestParse_NormalizesFields(t *testing.T) {
	got, err := Parse([]byte(`
quotes:
  - text: "  Stay hungry.  "
    author: " Steve Jobs "
    category: " Inspiration "
  - text: "Untitled"
`))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.Quote{Text: "Stay hungry.", AuthorName: "Steve Jobs", CategoryName: "inspiration"}, got[0])
	assert.Equal(t, domain.Quote{Text: "Untitled"}, got[1])
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("quotes: [ - unterminated"))
	assert.Error(t, err)

	_, err = Parse([]byte("quotes:\n  - author: nobody\n"))
	assert.ErrorIs(t, err, domain.ErrEmptyQuote)
}

func TestDefault_IsValid(t *testing.T) {
	quotes, err := Default()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(quotes), 40)
	for _, q := range quotes {
		assert.NotEmpty(t, q.AuthorName, "bundled quote %q has no author", q.Text)
		assert.NotEmpty(t, q.CategoryName, "bundled quote %q has no category", q.Text)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.yml")
	require.NoError(t, os.WriteFile(path, []byte("quotes:\n  - text: hi\n"), 0o600))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.Quote{{Text: "hi"}}, got)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
