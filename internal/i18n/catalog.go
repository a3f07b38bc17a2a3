// Package i18n loads the user-facing message catalogs and builds printers for a locale.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the reference locale; other locales fall back to it.
const BaseLocale = "pt-BR"

//go:embed locales/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds every loaded locale and the x/text catalog built from them.
type Bundle struct {
	messages map[string]map[string]string
	tags     []language.Tag
	builder  *catalog.Builder
	matcher  language.Matcher
}

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
	defaultErr    error
)

// Default returns the bundle built from the embedded catalogs.
func Default() (*Bundle, error) {
	defaultOnce.Do(func() {
		defaultBundle, defaultErr = LoadFromFS(embeddedFS)
	})
	return defaultBundle, defaultErr
}

// LoadFromFS loads every locales/*.yaml file in fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	baseTag := language.MustParse(BaseLocale)
	b := &Bundle{
		messages: map[string]map[string]string{},
		builder:  catalog.NewBuilder(catalog.Fallback(baseTag)),
	}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := b.add(path, file); err != nil {
			return nil, err
		}
	}

	base, ok := b.messages[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	for _, key := range Keys() {
		if _, ok := base[key]; !ok {
			return nil, fmt.Errorf("base locale %s is missing key %q", BaseLocale, key)
		}
	}

	// The base tag goes first so the matcher prefers it for unsupported locales.
	sort.SliceStable(b.tags, func(i, j int) bool { return b.tags[i] == baseTag && b.tags[j] != baseTag })
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

func (b *Bundle) add(path string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", path)
	}
	if _, exists := b.messages[locale]; exists {
		return fmt.Errorf("catalog %s: locale %q already defined", path, locale)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale %q: %w", path, locale, err)
	}

	msgs := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", path)
		}
		if err := b.builder.SetString(tag, key, value); err != nil {
			return fmt.Errorf("catalog %s: set %q: %w", path, key, err)
		}
		msgs[key] = value
	}
	b.messages[locale] = msgs
	b.tags = append(b.tags, tag)
	return nil
}

// Locales returns the loaded locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Printer returns a printer for the closest supported match of locale.
func (b *Bundle) Printer(locale string) *message.Printer {
	tag := language.MustParse(BaseLocale)
	if requested, err := language.Parse(strings.TrimSpace(locale)); err == nil {
		_, index, confidence := b.matcher.Match(requested)
		if confidence != language.No {
			tag = b.tags[index]
		}
	}
	return message.NewPrinter(tag, message.Catalog(b.builder))
}

// Localizer renders store messages for one locale.
func (b *Bundle) Localizer(locale string) *Localizer {
	return &Localizer{printer: b.Printer(locale)}
}

// Localizer is a locale-bound message renderer. A nil Localizer renders
// through the default bundle's base locale.
type Localizer struct {
	printer *message.Printer
}

// T renders the message for key.
func (l *Localizer) T(key string) string {
	if l == nil || l.printer == nil {
		bundle, err := Default()
		if err != nil {
			return key
		}
		return bundle.Printer(BaseLocale).Sprintf(key)
	}
	return l.printer.Sprintf(key)
}
