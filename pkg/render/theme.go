package render

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Partial keys renderers look up in RendererConfig.Partials.
const (
	PartialHTML = "summary.html"
	PartialText = "summary.text"
	// AssetStylesheet names the stylesheet asset linked from HTML output.
	AssetStylesheet = "summary.stylesheet"
)

// ThemeSelector resolves a theme/variant pair into a go-theme selection.
type ThemeSelector interface {
	Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error)
}

// DefaultThemeFallbacks returns the partials used when a theme does not
// override them.
func DefaultThemeFallbacks() map[string]string {
	return map[string]string{
		PartialHTML: "page",
		PartialText: "text",
	}
}

// ResolveTheme asks selector for name/variant and flattens the selection into
// a renderer configuration. Variant tokens, templates and assets override the
// manifest's; fallbacks fill partials nobody configured.
func ResolveTheme(selector ThemeSelector, name, variant string, fallbacks map[string]string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, fmt.Errorf("render: theme selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, fmt.Errorf("render: theme %q not found", name)
	}
	return rendererConfig(selection, fallbacks), nil
}

func rendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if fallbacks == nil {
		fallbacks = DefaultThemeFallbacks()
	}

	partials := copyStringMap(fallbacks)
	if partials == nil {
		partials = make(map[string]string)
	}
	tokens := make(map[string]string)
	files := make(map[string]string)
	prefix := ""

	if manifest := selection.Manifest; manifest != nil {
		mergeStrings(tokens, manifest.Tokens)
		mergeStrings(partials, manifest.Templates)
		mergeStrings(files, manifest.Assets.Files)
		prefix = manifest.Assets.Prefix

		if v, ok := manifest.Variants[selection.Variant]; ok && selection.Variant != "" {
			mergeStrings(tokens, v.Tokens)
			mergeStrings(partials, v.Templates)
			mergeStrings(files, v.Assets.Files)
			if strings.TrimSpace(v.Assets.Prefix) != "" {
				prefix = v.Assets.Prefix
			}
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+strings.TrimPrefix(key, "--")] = value
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(prefix, files),
	}
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file := strings.TrimSpace(files[key])
		if file == "" {
			return ""
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
}

// StaticSelector serves a fixed set of manifests. Empty names fall back to the
// configured defaults.
type StaticSelector struct {
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

// NewStaticSelector indexes manifests by name.
func NewStaticSelector(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) *StaticSelector {
	s := &StaticSelector{
		manifests:      make(map[string]*theme.Manifest, len(manifests)),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
	for _, manifest := range manifests {
		if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
			continue
		}
		s.manifests[manifest.Name] = manifest
	}
	return s
}

// Select implements ThemeSelector.
func (s *StaticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)
	if name == "" {
		name = s.defaultTheme
		if variant == "" {
			variant = s.defaultVariant
		}
	}

	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("render: unknown theme %q (available: %s)", name, strings.Join(s.Names(), ", "))
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("render: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// Names lists the registered themes, sorted.
func (s *StaticSelector) Names() []string {
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultManifest is the built-in summary theme with a "dark" variant.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "surveyform",
		Version: "1.0.0",
		Tokens: map[string]string{
			"summary-bg":     "#ffffff",
			"summary-fg":     "#1f2933",
			"summary-accent": "#2563eb",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"summary-bg": "#111827",
					"summary-fg": "#f9fafb",
				},
			},
		},
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteByte(';')
	}
	return b.String()
}

func mergeStrings(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
