package tokenizer

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball/english"
)

// Tokenizer maps raw document text to a sequence of normalized tokens.
// It is an immutable configuration value; construct one with New and share
// it freely.
type Tokenizer struct {
	stopwords map[string]struct{}
	stemming  bool
}

// New returns a Tokenizer with the fixed English stopword set. When stemming
// is enabled each surviving token is reduced to its snowball stem.
func New(stemming bool) Tokenizer {
	return Tokenizer{
		stopwords: stopwordSet(),
		stemming:  stemming,
	}
}

// Stemming reports whether the tokenizer rewrites tokens to their stems.
func (t Tokenizer) Stemming() bool {
	return t.stemming
}

// Tokenize splits text on word boundaries and returns the lowercase
// alphabetic tokens that are not stopwords. Case-folding happens before the
// stopword comparison; stemming, when enabled, happens after it.
func (t Tokenizer) Tokenize(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		if !alphabetic(tok.Text) {
			continue
		}
		word := strings.ToLower(tok.Text)
		if _, stop := t.stopwords[word]; stop {
			continue
		}
		if t.stemming {
			word = english.Stem(word, false)
		}
		tokens = append(tokens, word)
	}
	return tokens, nil
}

// TokenizeAll tokenizes every document in the corpus, preserving order.
func (t Tokenizer) TokenizeAll(docs []string) ([][]string, error) {
	tokenized := make([][]string, len(docs))
	for i, doc := range docs {
		tokens, err := t.Tokenize(doc)
		if err != nil {
			return nil, err
		}
		tokenized[i] = tokens
	}
	return tokenized, nil
}

func alphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
