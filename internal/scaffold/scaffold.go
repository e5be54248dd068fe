package scaffold

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/mod/modfile"

	"adventofcode2021/internal/logging"
	"adventofcode2021/internal/manifest"
	"adventofcode2021/internal/store"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// RegistryFile is the generated list of days, relative to the root.
const RegistryFile = "internal/days/all/all.go"

// Options locate the workspace being scaffolded.
type Options struct {
	Root     string // workspace root holding go.mod
	Manifest string // manifest path relative to Root
	Inputs   string // inputs directory relative to Root; defaults to "inputs"
	Title    string // puzzle title; defaults to "Day N"
}

// Report describes what Generate did.
type Report struct {
	Day     int
	Skipped bool
	Created []string // paths relative to Root
}

type dayData struct {
	Module string
	Number int
	Name   string
	Title  string
}

type registryData struct {
	Module string
	Days   []manifest.Entry
}

// ModulePath reads the module path from root/go.mod.
func ModulePath(root string) (string, error) {
	b, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("reading go.mod: %w", err)
	}
	mod := modfile.ModulePath(b)
	if mod == "" {
		return "", fmt.Errorf("%s has no module directive", filepath.Join(root, "go.mod"))
	}
	return mod, nil
}

// render executes a template and gofmts the result.
func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", name, err)
	}
	return src, nil
}

// Generate scaffolds day n under opts.Root.
func Generate(ctx context.Context, opts Options, n int) (Report, error) {
	log := logging.FromContext(ctx)
	rep := Report{Day: n}
	e := manifest.NewEntry(n, opts.Title)
	if e.Title == "" {
		e.Title = fmt.Sprintf("Day %d", n)
	}
	if opts.Inputs != "" {
		e.Input = filepath.ToSlash(filepath.Join(opts.Inputs, e.Name()+".txt"))
	}
	data := dayData{Number: n, Name: e.Name(), Title: e.Title}

	mainPath := filepath.Join("cmd", e.Name(), "main.go")
	exists, err := store.Exists(filepath.Join(opts.Root, mainPath))
	if err != nil {
		return rep, err
	}
	if exists {
		log.Info("Day already exists, skipping", zap.String("path", mainPath))
		rep.Skipped = true
		return rep, nil
	}

	if data.Module, err = ModulePath(opts.Root); err != nil {
		return rep, err
	}

	files := []struct {
		path, tmpl string
	}{
		{filepath.FromSlash(e.Input), ""},
		{filepath.Join("internal", "days", e.Name(), e.Name()+".go"), "day.go.tmpl"},
		{filepath.Join("internal", "days", e.Name(), e.Name()+"_test.go"), "day_test.go.tmpl"},
		{mainPath, "main.go.tmpl"},
	}
	for _, f := range files {
		var content []byte
		if f.tmpl != "" {
			if content, err = render(f.tmpl, data); err != nil {
				return rep, err
			}
		}
		created, err := createIfAbsent(filepath.Join(opts.Root, f.path), content)
		if err != nil {
			return rep, err
		}
		if created {
			log.Info("Created", zap.String("path", f.path))
			rep.Created = append(rep.Created, f.path)
		}
	}

	manifestPath := filepath.Join(opts.Root, opts.Manifest)
	added, err := manifest.Append(manifestPath, e)
	if err != nil {
		return rep, err
	}
	if added {
		log.Info("Added manifest entry", zap.String("manifest", opts.Manifest), zap.String("day", e.Day))
	}

	if err := WriteRegistry(ctx, opts); err != nil {
		return rep, err
	}
	return rep, nil
}

func createIfAbsent(path string, content []byte) (bool, error) {
	err := store.Create(path, content, 0o644)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, store.ErrExists) {
		return false, nil
	}
	return false, err
}

// RenderRegistry returns the contents RegistryFile should have. Manifest
// entries whose solution package is missing are left out.
func RenderRegistry(ctx context.Context, opts Options) ([]byte, error) {
	mod, err := ModulePath(opts.Root)
	if err != nil {
		return nil, err
	}
	entries, err := manifest.Load(filepath.Join(opts.Root, opts.Manifest))
	if err != nil {
		return nil, err
	}

	data := registryData{Module: mod}
	for _, e := range entries {
		ok, err := store.Exists(filepath.Join(opts.Root, "internal", "days", e.Name()))
		if err != nil {
			return nil, err
		}
		if !ok {
			logging.FromContext(ctx).Warn("Manifest entry has no solution package", zap.String("day", e.Day))
			continue
		}
		data.Days = append(data.Days, e)
	}

	return render("all.go.tmpl", data)
}

// WriteRegistry regenerates RegistryFile, leaving it untouched when it is
// already current.
func WriteRegistry(ctx context.Context, opts Options) error {
	src, err := RenderRegistry(ctx, opts)
	if err != nil {
		return err
	}
	old, err := store.ReadFile(filepath.Join(opts.Root, RegistryFile))
	if err != nil {
		return err
	}
	if bytes.Equal(old, src) {
		return nil
	}
	return store.WriteFile(filepath.Join(opts.Root, RegistryFile), src, 0o644)
}
