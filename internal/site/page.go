package site

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"akhil.cc/mdsite"
	"akhil.cc/mdsite/gen/html"
)

// Placeholders replaced in a page template.
const (
	TitleToken   = "{{ Title }}"
	ContentToken = "{{ Content }}"
)

// Page records one generated page.
type Page struct {
	Source string
	Dest   string
	Title  string
}

// Substitute fills every title and content placeholder of tmpl.
func Substitute(tmpl, title, content string) string {
	return strings.NewReplacer(TitleToken, title, ContentToken, content).Replace(tmpl)
}

// GeneratePage renders the markdown file at from into the template at
// tmplPath and writes the result to dest, creating its directory.
func GeneratePage(from, tmplPath, dest string, b html.Builder) (Page, error) {
	tmpl, err := os.ReadFile(tmplPath)
	if err != nil {
		return Page{}, fmt.Errorf("failed to read template: %w", err)
	}
	return generate(from, string(tmpl), tmplPath, dest, b)
}

// GeneratePagesRecursive generates a page for every .md file below
// contentDir. A file content/a/b.md is written to destDir/a/b.html.
// Generation stops at the first page that fails.
func GeneratePagesRecursive(contentDir, tmplPath, destDir string, b html.Builder) ([]Page, error) {
	tmpl, err := os.ReadFile(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	var pages []Page
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != contentDir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}
		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(destDir, strings.TrimSuffix(rel, ".md")+".html")
		p, err := generate(path, string(tmpl), tmplPath, dest, b)
		if err != nil {
			return err
		}
		pages = append(pages, p)
		return nil
	})
	return pages, err
}

func generate(from, tmpl, tmplPath, dest string, b html.Builder) (Page, error) {
	tracer().Infof("generating page from %s to %s using %s", from, dest, tmplPath)
	src, err := os.ReadFile(from)
	if err != nil {
		return Page{}, fmt.Errorf("failed to read page: %w", err)
	}
	body, err := mdsite.Convert(string(src), b)
	if err != nil {
		return Page{}, fmt.Errorf("%s: %w", from, err)
	}
	title, err := mdsite.ExtractTitle(string(src))
	if err != nil {
		return Page{}, fmt.Errorf("%s: %w", from, err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return Page{}, fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(dest, []byte(Substitute(tmpl, title, body)), 0o644); err != nil {
		return Page{}, fmt.Errorf("failed to write page: %w", err)
	}
	return Page{Source: from, Dest: dest, Title: title}, nil
}
