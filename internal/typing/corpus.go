package typing

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Corpus is a fixed set of candidate target phrases.
type Corpus []string

var builtin = map[string]Corpus{
	"en": {
		"Elegant code is like music. Every line should have its own rhythm and meaning.",
		"Perfection is reached not when there is nothing left to add, but when there is nothing left to take away.",
		"Quality mechanical switches create a tactile symphony for your fingers.",
		"In a world of digital noise, clean design and fast reactions decide everything.",
	},
	"ru": {
		"Элегантный код подобен музыке. Каждая строка должна иметь свой ритм и смысл.",
		"Совершенство достигнуто не тогда, когда нечего добавить, а когда нечего убрать.",
		"Качественные механические переключатели создают тактильную симфонию для пальцев.",
		"В мире цифрового шума чистота дизайна и скорость реакции решают всё.",
	},
}

// BuiltinCorpus returns the embedded corpus for lang.
func BuiltinCorpus(lang string) (Corpus, bool) {
	corpus, ok := builtin[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return nil, false
	}
	return append(Corpus(nil), corpus...), true
}

// BuiltinLangs lists the languages with an embedded corpus.
func BuiltinLangs() []string {
	langs := make([]string, 0, len(builtin))
	for lang := range builtin {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// LoadCorpus reads one phrase per line from the provided file path.
// Blank lines are skipped; lines rejected by the filter are an error.
func LoadCorpus(path string) (Corpus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only corpus.
			_ = cerr
		}
	}()

	var corpus Corpus
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !ValidPhrase(line) {
			return nil, fmt.Errorf("line %d: phrase contains control characters", lineNo)
		}
		corpus = append(corpus, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(corpus) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	return corpus, nil
}
