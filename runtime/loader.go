// Package runtime handles the infrastructure-level tasks like loading configuration and files.
package runtime

import (
	"bufio"
	"chatroom/errors"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed censored/*
var censoredFolder embed.FS

// CensoredData carries the result of the loading process including metadata for logging.
type CensoredData struct {
	Words     []string
	Languages []string
}

// WordLoader reads blacklisted words from a filesystem (embedded or on disk).
type WordLoader struct {
	fs fs.FS
}

func NewWordLoader(f fs.FS) *WordLoader {
	return &WordLoader{fs: f}
}

// NewEmbeddedWordLoader reads the word lists shipped with the binary.
func NewEmbeddedWordLoader() *WordLoader {
	return &WordLoader{fs: censoredFolder}
}

// Load parses a single word list file.
func (l *WordLoader) Load(name string) ([]string, error) {
	f, err := l.fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseWords(f)
}

// LoadAll scans the given directory, identifying .txt files as language dictionaries.
// Files are read in name order and words keep the order they appear in.
// A word present twice, even in two files, is rejected.
func (l *WordLoader) LoadAll(dir string) (*CensoredData, error) {
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var languages []string
	var words []string
	seen := make(map[string]string)

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		lang := strings.TrimSuffix(entry.Name(), ".txt")
		fileWords, err := l.Load(path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		for _, w := range fileWords {
			if other, ok := seen[w]; ok {
				return nil, fmt.Errorf("%w: %q in %s and %s", errors.ErrDuplicateWord, w, other, lang)
			}
			seen[w] = lang
			words = append(words, w)
		}
		languages = append(languages, lang)
	}

	if len(words) == 0 {
		return nil, errors.ErrEmptyWords
	}
	return &CensoredData{Words: words, Languages: languages}, nil
}

// ParseWords reads one word per line. Entries are trimmed and lowercased,
// blank lines and lines starting with '#' are skipped.
// Duplicates ignoring case are an error, and so is a list with no word.
func ParseWords(r io.Reader) ([]string, error) {
	var words []string
	seen := make(map[string]int)

	// Use a scanner to handle different line endings (\n vs \r\n) correctly
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		word = strings.ToLower(word)
		if first, ok := seen[word]; ok {
			return nil, fmt.Errorf("%w: %q on lines %d and %d", errors.ErrDuplicateWord, word, first, line)
		}
		seen[word] = line
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.ErrEmptyWords
	}
	return words, nil
}
