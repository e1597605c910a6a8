package runtime

import (
	"chatroom/errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestParseWords(t *testing.T) {
	req := require.New(t)
	input := "# swear words\n  Damn \r\n\nshit\n#comment\nCrap\n"

	words, err := ParseWords(strings.NewReader(input))

	req.NoError(err)
	req.Equal([]string{"damn", "shit", "crap"}, words)
}

func TestParseWords_Errors(t *testing.T) {
	req := require.New(t)

	_, err := ParseWords(strings.NewReader("damn\nshit\nDAMN\n"))
	req.ErrorIs(err, errors.ErrDuplicateWord)

	_, err = ParseWords(strings.NewReader("# nothing\n\n   \n"))
	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestWordLoader_LoadAll(t *testing.T) {
	req := require.New(t)
	loader := NewWordLoader(fstest.MapFS{
		"lists/fr.txt":     {Data: []byte("merde\n")},
		"lists/en.txt":     {Data: []byte("damn\nshit\n")},
		"lists/README.md":  {Data: []byte("not a list")},
		"lists/old/de.txt": {Data: []byte("mist\n")},
	})

	data, err := loader.LoadAll("lists")

	req.NoError(err)
	req.Equal([]string{"en", "fr"}, data.Languages)
	req.Equal([]string{"damn", "shit", "merde"}, data.Words)
}

func TestWordLoader_LoadAll_Duplicate_Across_Files(t *testing.T) {
	req := require.New(t)
	loader := NewWordLoader(fstest.MapFS{
		"lists/en.txt": {Data: []byte("damn\n")},
		"lists/fr.txt": {Data: []byte("Damn\n")},
	})

	_, err := loader.LoadAll("lists")
	req.ErrorIs(err, errors.ErrDuplicateWord)
}

func TestWordLoader_LoadAll_Empty_Directory(t *testing.T) {
	req := require.New(t)
	loader := NewWordLoader(fstest.MapFS{"lists/README.md": {Data: []byte("nothing")}})

	_, err := loader.LoadAll("lists")
	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestEmbeddedWordLoader(t *testing.T) {
	req := require.New(t)

	data, err := NewEmbeddedWordLoader().LoadAll("censored")

	req.NoError(err)
	req.Equal([]string{"en", "fr"}, data.Languages)
	req.Contains(data.Words, "damn")
	req.Contains(data.Words, "merde")
}
