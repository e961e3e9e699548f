package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"
	"time"
)

//go:embed templates
var templateFS embed.FS

// Spec template names.
const (
	TemplateMinimal = "minimal"
	TemplateDefault = "default"
	TemplateFull    = "full"
)

// SpecFile is where Generate writes the specification inside a project.
const SpecFile = "specs/marketing-spec.yaml"

var (
	// ErrUnknownTemplate is returned for a template name not in Templates.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrDirNotEmpty is returned when the output directory already holds
	// files and force is not set.
	ErrDirNotEmpty = errors.New("output directory is not empty")

	// ErrFileExists is returned by WriteSpec for an existing file without force.
	ErrFileExists = errors.New("file already exists")
)

// projectFiles maps output paths to their template under templates/project.
var projectFiles = []struct {
	path     string
	template string
}{
	{"README.md", "README.md.tmpl"},
	{"memory/constitution.md", "constitution.md.tmpl"},
	{"specs/README.md", "specs-README.md.tmpl"},
	{".gitignore", "gitignore.tmpl"},
}

// Templates returns the available spec template names.
func Templates() []string {
	return []string{TemplateMinimal, TemplateDefault, TemplateFull}
}

// Data is the context every template is rendered with.
type Data struct {
	ProjectName   string
	ProjectID     string
	Template      string
	GeneratedDate string
	ToolName      string
	ToolVersion   string
}

// Project describes a generated (or, for a dry run, planned) project.
type Project struct {
	Name     string   `json:"project_name"`
	Dir      string   `json:"output_dir"`
	Template string   `json:"template"`
	Files    []string `json:"files"`
	DryRun   bool     `json:"dry_run"`
}

// Generator renders project skeletons from the embedded templates.
type Generator struct {
	version string
	now     func() time.Time
}

// NewGenerator returns a generator that stamps files with version.
func NewGenerator(version string) *Generator {
	return &Generator{version: version, now: time.Now}
}

// Generate renders a project named name into dir using the given spec
// template. It refuses a non-empty dir unless force is set; with dryRun
// it renders everything but writes nothing. Files are listed in the
// order they are written.
func (g *Generator) Generate(name, dir, tmpl string, force, dryRun bool) (*Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("project name is required")
	}
	if !slices.Contains(Templates(), tmpl) {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownTemplate, tmpl, strings.Join(Templates(), ", "))
	}

	if !dryRun && !force {
		if err := ensureEmpty(dir); err != nil {
			return nil, err
		}
	}

	data := g.data(name, tmpl)
	rendered := make(map[string][]byte, len(projectFiles)+1)
	files := make([]string, 0, len(projectFiles)+1)

	for _, f := range projectFiles {
		out, err := render("templates/project/"+f.template, data)
		if err != nil {
			return nil, err
		}
		rendered[f.path] = out
		files = append(files, f.path)
	}

	spec, err := render(specTemplatePath(tmpl), data)
	if err != nil {
		return nil, err
	}
	rendered[SpecFile] = spec
	files = append(files, SpecFile)

	project := &Project{Name: name, Dir: dir, Template: tmpl, Files: files, DryRun: dryRun}
	if dryRun {
		return project, nil
	}

	for _, rel := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(path, rendered[rel], 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", rel, err)
		}
	}
	return project, nil
}

// Spec renders a spec template for projectName.
func (g *Generator) Spec(tmpl, projectName string) ([]byte, error) {
	if !slices.Contains(Templates(), tmpl) {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownTemplate, tmpl, strings.Join(Templates(), ", "))
	}
	return render(specTemplatePath(tmpl), g.data(projectName, tmpl))
}

// WriteSpec renders a spec template to path, refusing to overwrite an
// existing file unless force is set.
func (g *Generator) WriteSpec(path, tmpl, projectName string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
	}
	out, err := g.Spec(tmpl, projectName)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (g *Generator) data(name, tmpl string) Data {
	return Data{
		ProjectName:   name,
		ProjectID:     Slugify(name),
		Template:      tmpl,
		GeneratedDate: g.now().Format("2006-01-02"),
		ToolName:      "mspec",
		ToolVersion:   g.version,
	}
}

func specTemplatePath(tmpl string) string {
	return "templates/spec/" + tmpl + ".yaml.tmpl"
}

var funcs = template.FuncMap{
	// quote emits a YAML double-quoted scalar.
	"quote": strconv.Quote,
}

func render(path string, data Data) ([]byte, error) {
	src, err := fs.ReadFile(templateFS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}
	t, err := template.New(filepath.Base(path)).Funcs(funcs).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

func ensureEmpty(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read output directory: %w", err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrDirNotEmpty, dir)
	}
	return nil
}

// Slugify turns a project name into a lowercase hyphenated identifier.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "project"
	}
	return slug
}
