package vocab

import (
	_ "embed"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	rerrors "github.com/waves-survey/ripval/pkg/errors"
)

var (
	//go:embed data/protected_words.yaml
	protectedData []byte

	//go:embed data/filters.yaml
	filtersData []byte

	//go:embed data/exceptions.yaml
	exceptionsData []byte

	defaultOnce   sync.Once
	cachedDefault *Vocabulary
	cachedErr     error
)

// Default loads and caches the curated vocabulary embedded at build time.
// Because the data is embedded, it is parsed once and the in-memory
// representation is reused for the lifetime of the process.
func Default() (*Vocabulary, error) {
	defaultOnce.Do(func() {
		cachedDefault, cachedErr = Parse(DefaultBanned, protectedData, filtersData, exceptionsData)
	})

	if cachedErr != nil {
		return nil, cachedErr
	}
	if cachedDefault == nil {
		return nil, rerrors.New(rerrors.ErrCodeInternal, "default vocabulary not initialized")
	}
	return cachedDefault, nil
}

// Parse builds a Vocabulary from a banned word list and the three curated
// YAML documents. Each document is a mapping from canonical form to its
// attributes; document order is preserved because it is the tie-break
// policy for vocabulary scans.
func Parse(banned []string, protectedYAML, filtersYAML, exceptionsYAML []byte) (*Vocabulary, error) {
	v := &Vocabulary{Banned: banned}

	err := decodeOrdered(protectedYAML, func(name string, node *yaml.Node) error {
		var entry struct {
			CommonMistakes []string `yaml:"common_mistakes"`
			UCD            []string `yaml:"ucd"`
			Unit           []string `yaml:"unit"`
		}
		if err := node.Decode(&entry); err != nil {
			return rerrors.Wrap(rerrors.ErrCodeInvalidConfig, err, "invalid protected word entry "+name)
		}
		v.Protected = append(v.Protected, ProtectedWord{
			Name:            name,
			Representations: entry.CommonMistakes,
			UCDs:            entry.UCD,
			Units:           entry.Unit,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = decodeOrdered(filtersYAML, func(name string, node *yaml.Node) error {
		var entry struct {
			SecondaryUCD string `yaml:"secondary_ucd"`
		}
		if err := node.Decode(&entry); err != nil {
			return rerrors.Wrap(rerrors.ErrCodeInvalidConfig, err, "invalid filter entry "+name)
		}
		v.Filters = append(v.Filters, NewFilterName(name, entry.SecondaryUCD))
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = decodeOrdered(exceptionsYAML, func(name string, node *yaml.Node) error {
		var entry struct {
			UCD  string `yaml:"ucd"`
			Unit string `yaml:"unit"`
		}
		if err := node.Decode(&entry); err != nil {
			return rerrors.Wrap(rerrors.ErrCodeInvalidConfig, err, "invalid exception entry "+name)
		}
		v.Exceptions = append(v.Exceptions, ExceptionWord{Name: name, UCD: entry.UCD, Unit: entry.Unit})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return v, nil
}

// Load builds a Vocabulary from external YAML files, overriding the
// embedded curated lists. The banned word list stays the process-wide
// default.
func Load(protectedPath, filtersPath, exceptionsPath string) (*Vocabulary, error) {
	protectedYAML, err := os.ReadFile(protectedPath)
	if err != nil {
		return nil, rerrors.Wrap(rerrors.ErrCodeIO, err, "reading protected words")
	}
	filtersYAML, err := os.ReadFile(filtersPath)
	if err != nil {
		return nil, rerrors.Wrap(rerrors.ErrCodeIO, err, "reading filter names")
	}
	exceptionsYAML, err := os.ReadFile(exceptionsPath)
	if err != nil {
		return nil, rerrors.Wrap(rerrors.ErrCodeIO, err, "reading exception words")
	}
	return Parse(DefaultBanned, protectedYAML, filtersYAML, exceptionsYAML)
}

// decodeOrdered walks the top-level mapping of a YAML document in document
// order. Go maps do not preserve insertion order, so the entries are pulled
// straight from the node tree.
func decodeOrdered(data []byte, fn func(name string, node *yaml.Node) error) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return rerrors.Wrap(rerrors.ErrCodeInvalidConfig, err, "parsing vocabulary yaml")
	}
	if len(root.Content) == 0 {
		return nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return rerrors.New(rerrors.ErrCodeInvalidConfig, "vocabulary yaml must be a mapping of canonical forms")
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if err := fn(doc.Content[i].Value, doc.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}
