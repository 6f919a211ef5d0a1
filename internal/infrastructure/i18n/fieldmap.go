// Package i18n holds the translation field map: a static registry of the
// entity columns that get per-locale shadow columns in storage.
package i18n

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// translatableFields maps a table to the columns eligible for translation.
// This is pure configuration; the persistence layer consults it to decide
// which columns carry locale suffixes.
var translatableFields = map[string][]string{
	"products":       {"name", "description"},
	"stores":         {"name", "description", "address"},
	"categories":     {"name"},
	"product_combos": {"name", "description"},
}

// Registry resolves translatable fields to locale-suffixed shadow columns
type Registry struct {
	defaultLocale language.Tag
	locales       []language.Tag
	matcher       language.Matcher
}

// NewRegistry creates a registry for the given locales.
// The default locale must be among the supported ones.
func NewRegistry(defaultLocale string, locales []string) (*Registry, error) {
	if len(locales) == 0 {
		return nil, fmt.Errorf("at least one locale is required")
	}

	def, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
	}

	tags := make([]language.Tag, 0, len(locales))
	hasDefault := false
	for _, l := range locales {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", l, err)
		}
		if tag == def {
			hasDefault = true
		}
		tags = append(tags, tag)
	}
	if !hasDefault {
		return nil, fmt.Errorf("default locale %q must be listed in locales", defaultLocale)
	}

	return &Registry{
		defaultLocale: def,
		locales:       tags,
		matcher:       language.NewMatcher(tags),
	}, nil
}

// Tables returns the tables carrying translatable fields, sorted
func (r *Registry) Tables() []string {
	tables := make([]string, 0, len(translatableFields))
	for table := range translatableFields {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	return tables
}

// Fields returns the translatable columns of a table, or nil if it has none
func (r *Registry) Fields(table string) []string {
	fields, ok := translatableFields[table]
	if !ok {
		return nil
	}
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// IsTranslatable reports whether the column of a table is translatable
func (r *Registry) IsTranslatable(table, field string) bool {
	for _, f := range translatableFields[table] {
		if f == field {
			return true
		}
	}
	return false
}

// Locales returns the supported locales
func (r *Registry) Locales() []language.Tag {
	out := make([]language.Tag, len(r.locales))
	copy(out, r.locales)
	return out
}

// DefaultLocale returns the fallback locale
func (r *Registry) DefaultLocale() language.Tag {
	return r.defaultLocale
}

// Column resolves the storage column for a field under the requested locale.
// Untranslatable fields map to themselves; requested locales are matched
// against the supported set, falling back to the default locale.
func (r *Registry) Column(table, field string, locale language.Tag) string {
	if !r.IsTranslatable(table, field) {
		return field
	}
	_, idx, conf := r.matcher.Match(locale)
	matched := r.locales[idx]
	if conf == language.No {
		matched = r.defaultLocale
	}
	return field + "_" + LocaleSuffix(matched)
}

// ShadowColumns returns every locale-suffixed column of a table, in
// field order then locale order, for DDL generation.
func (r *Registry) ShadowColumns(table string) []string {
	fields, ok := translatableFields[table]
	if !ok {
		return nil
	}
	columns := make([]string, 0, len(fields)*len(r.locales))
	for _, field := range fields {
		for _, locale := range r.locales {
			columns = append(columns, field+"_"+LocaleSuffix(locale))
		}
	}
	return columns
}

// LocaleSuffix converts a locale tag into a column suffix: lowercase,
// with subtag separators flattened to underscores (pt-BR -> pt_br).
func LocaleSuffix(tag language.Tag) string {
	return strings.ToLower(strings.ReplaceAll(tag.String(), "-", "_"))
}
