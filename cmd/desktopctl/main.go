// Command desktopctl parses desktop entry files, optionally validates them,
// and re-emits them as canonical desktop entry text or as YAML.
//
// Usage:
//
//	desktopctl [-validate] [-format desktop|yaml] [-locale LOCALE] file...
//
// The exit status is the number of files that failed to parse or validate.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	desktop "github.com/xdgkit/desktop-go"
)

func main() {
	validate := flag.Bool("validate", false, "run semantic validation after parsing")
	format := flag.String("format", "", "re-emit each file as `desktop` or `yaml`")
	localeFlag := flag.String("locale", "", "resolve localized fields for this `locale` (empty: process locale)")
	flag.Parse()

	setupLogger()

	if *format != "" && *format != "desktop" && *format != "yaml" {
		log.Fatal().Str("format", *format).Msg("unknown output format")
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: desktopctl [-validate] [-format desktop|yaml] [-locale LOCALE] file...")
		os.Exit(1)
	}

	statusCode := 0

	for _, path := range flag.Args() {
		doc, err := desktop.ParseFile(path)
		if err != nil {
			log.Error().Str("file", path).Msg(err.Error())
			statusCode++
			continue
		}

		if *validate {
			if err := doc.Validate(); err != nil {
				log.Error().Str("file", path).Msg(err.Error())
				statusCode++
				continue
			}
		}

		switch *format {
		case "desktop":
			fmt.Print(doc.String())
		case "yaml":
			out, err := yaml.Marshal(docView(doc, queryLocale(*localeFlag)))
			if err != nil {
				log.Error().Str("file", path).Err(err).Msg("failed to encode document")
				statusCode++
				continue
			}
			fmt.Print(string(out))
		default:
			if *localeFlag != "" {
				printResolved(doc, queryLocale(*localeFlag))
			}
		}
	}

	os.Exit(statusCode)
}

// setupLogger mirrors the usual console-vs-pipe split: human-readable output
// on a terminal, JSON lines otherwise.
func setupLogger() {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = log.Output(os.Stderr)
	}
}

func queryLocale(s string) desktop.Locale {
	if s == "" {
		return desktop.CurrentLocale()
	}
	return desktop.ParseLocale(s)
}

func printResolved(doc *desktop.Document, loc desktop.Locale) {
	fmt.Printf("Name: %s\n", doc.Name.Get(loc))
	if doc.GenericName != nil {
		fmt.Printf("GenericName: %s\n", doc.GenericName.Get(loc))
	}
	if doc.Comment != nil {
		fmt.Printf("Comment: %s\n", doc.Comment.Get(loc))
	}
	if doc.Keywords != nil {
		fmt.Printf("Keywords: %v\n", doc.Keywords.Get(loc))
	}
}

// docView flattens a document into plain maps and slices for YAML output.
// Localized fields are resolved against loc; raw variants are kept under
// a "localized" key so nothing is hidden.
func docView(doc *desktop.Document, loc desktop.Locale) map[string]any {
	view := map[string]any{
		"type": doc.EntryType.String(),
		"name": localizedView(&doc.Name, loc),
	}

	addString := func(key string, v *string) {
		if v != nil {
			view[key] = *v
		}
	}
	addBool := func(key string, v *bool) {
		if v != nil {
			view[key] = *v
		}
	}
	addList := func(key string, v []string) {
		if v != nil {
			view[key] = v
		}
	}

	addString("version", doc.Version)
	if doc.GenericName != nil {
		view["genericName"] = localizedView(doc.GenericName, loc)
	}
	addBool("noDisplay", doc.NoDisplay)
	if doc.Comment != nil {
		view["comment"] = localizedView(doc.Comment, loc)
	}
	if doc.Icon != nil {
		view["icon"] = localizedView(doc.Icon, loc)
	}
	addBool("hidden", doc.Hidden)
	addList("onlyShowIn", doc.OnlyShowIn)
	addList("notShowIn", doc.NotShowIn)
	addBool("dbusActivatable", doc.DBusActivatable)
	addString("tryExec", doc.TryExec)
	addString("exec", doc.Exec)
	addString("path", doc.Path)
	addBool("terminal", doc.Terminal)
	addList("actions", doc.Actions)
	addList("mimeType", doc.MimeType)
	addList("categories", doc.Categories)
	addList("implements", doc.Implements)
	if doc.Keywords != nil {
		view["keywords"] = doc.Keywords.Get(loc)
	}
	addBool("startupNotify", doc.StartupNotify)
	addString("startupWMClass", doc.StartupWMClass)
	addString("url", doc.URL)
	addBool("prefersNonDefaultGPU", doc.PrefersNonDefaultGPU)
	addBool("singleMainWindow", doc.SingleMainWindow)

	if doc.UnknownKeys.Len() > 0 {
		unknown := map[string][]string{}
		for _, key := range doc.UnknownKeys.Keys() {
			for _, e := range doc.UnknownKeys.Get(key) {
				name := e.Key
				if e.Locale != nil {
					name = fmt.Sprintf("%s[%s]", e.Key, e.Locale)
				}
				unknown[name] = append(unknown[name], e.Value)
			}
		}
		view["unknownKeys"] = unknown
	}

	if doc.AdditionalGroups.Len() > 0 {
		groups := map[string]map[string][]string{}
		for _, name := range doc.AdditionalGroups.Names() {
			g := doc.AdditionalGroups.Get(name)
			entries := map[string][]string{}
			for _, key := range g.Entries.Keys() {
				for _, e := range g.Entries.Get(key) {
					entries[e.Key] = append(entries[e.Key], e.Value)
				}
			}
			groups[name] = entries
		}
		view["additionalGroups"] = groups
	}

	return view
}

func localizedView(l *desktop.LocalizedString, loc desktop.Locale) map[string]any {
	view := map[string]any{
		"default":  l.Default,
		"resolved": l.Get(loc),
	}
	if locales := l.Locales(); len(locales) > 0 {
		variants := map[string]string{}
		for _, variantLocale := range locales {
			v, _ := l.Lookup(variantLocale)
			variants[variantLocale.String()] = v
		}
		view["localized"] = variants
	}
	return view
}
