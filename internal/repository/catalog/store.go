package catalog

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/econpath/internal/domain"
	"github.com/kailas-cloud/econpath/internal/domain/assessment"
	"github.com/kailas-cloud/econpath/internal/domain/assessment/tier"
	domcat "github.com/kailas-cloud/econpath/internal/domain/catalog"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/dimension"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/label"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/record"
)

// FormFile is the reserved file name of the self-assessment form.
const FormFile = "assessment.yaml"

//go:embed data/*.yaml
var builtin embed.FS

// Builtin returns the catalog content compiled into the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtin, "data")
	if err != nil {
		panic(err) // static path
	}
	return sub
}

// Store is the read-only catalog store. It is built once and safe for concurrent use.
type Store struct {
	catalogs []domcat.Catalog
	byName   map[string]int
	form     assessment.Form
}

// New parses every *.yaml file at the root of fsys. FormFile holds the
// self-assessment form; every other file holds one catalog named after the file.
func New(fsys fs.FS, logger *zap.Logger) (*Store, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list catalog files: %w", err)
	}
	sort.Strings(files)

	s := &Store{byName: make(map[string]int, len(files))}
	formLoaded := false
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}

		if file == FormFile {
			if s.form, err = parseForm(data); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidCatalog, file, err)
			}
			formLoaded = true
			continue
		}

		c, err := parseCatalog(strings.TrimSuffix(path.Base(file), ".yaml"), data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidCatalog, file, err)
		}
		s.byName[c.Name()] = len(s.catalogs)
		s.catalogs = append(s.catalogs, c)
		logger.Debug("catalog loaded",
			zap.String("catalog", c.Name()),
			zap.Int("records", c.Len()),
			zap.Int("dimensions", len(c.Dimensions())),
		)
	}

	if !formLoaded {
		return nil, fmt.Errorf("%w: %s is missing", domain.ErrInvalidCatalog, FormFile)
	}
	if len(s.catalogs) == 0 {
		return nil, fmt.Errorf("%w: no catalogs found", domain.ErrInvalidCatalog)
	}

	logger.Info("Catalog store ready",
		zap.Int("catalogs", len(s.catalogs)),
		zap.Int("assessment_skills", len(s.form.Skills())),
	)
	return s, nil
}

// Load returns every catalog, ordered by name.
func (s *Store) Load() []domcat.Catalog {
	out := make([]domcat.Catalog, len(s.catalogs))
	copy(out, s.catalogs)
	return out
}

// Get returns a catalog by name.
func (s *Store) Get(name string) (domcat.Catalog, error) {
	i, ok := s.byName[name]
	if !ok {
		return domcat.Catalog{}, fmt.Errorf("catalog %q: %w", name, domain.ErrNotFound)
	}
	return s.catalogs[i], nil
}

// Form returns the self-assessment form.
func (s *Store) Form() assessment.Form {
	return s.form
}

// Ping reports whether the store holds content.
func (s *Store) Ping(_ context.Context) error {
	if s == nil || len(s.catalogs) == 0 {
		return errors.New("catalog store is empty")
	}
	return nil
}

func parseCatalog(name string, data []byte) (domcat.Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domcat.Catalog{}, fmt.Errorf("parse yaml: %w", err)
	}
	if f.Name != name {
		return domcat.Catalog{}, fmt.Errorf("catalog name %q does not match file name %q", f.Name, name)
	}

	dims := make([]dimension.Dimension, 0, len(f.Dimensions))
	for _, d := range f.Dimensions {
		dim, err := dimension.New(d.Key, d.Field, dimension.Kind(d.Kind), dimension.Match(d.Match), d.Options)
		if err != nil {
			return domcat.Catalog{}, err
		}
		dims = append(dims, dim)
	}

	recs := make([]record.Record, 0, len(f.Records))
	for i := range f.Records {
		r, err := parseRecord(&f.Records[i], dims)
		if err != nil {
			return domcat.Catalog{}, fmt.Errorf("record %d: %w", i, err)
		}
		recs = append(recs, r)
	}

	return domcat.New(f.Name, f.Title, f.Section, f.Columns, dims, recs)
}

func parseRecord(n *yaml.Node, dims []dimension.Dimension) (record.Record, error) {
	if n.Kind != yaml.MappingNode {
		return record.Record{}, fmt.Errorf("line %d: expected a mapping", n.Line)
	}

	fields := make([]record.Field, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		v, err := scalarValue(val)
		if err != nil {
			return record.Record{}, fmt.Errorf("field %q: %w", key.Value, err)
		}
		fields = append(fields, record.Field{Name: key.Value, Value: v})
	}

	labels := make(map[string]label.Set, len(dims))
	for _, d := range dims {
		for _, f := range fields {
			if f.Name == d.Field() {
				labels[d.Key()] = d.Tokenize(f.String())
				break
			}
		}
	}
	return record.New(fields, labels)
}

func scalarValue(n *yaml.Node) (any, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: expected a scalar", n.Line)
	}
	switch n.ShortTag() {
	case "!!str":
		return n.Value, nil
	case "!!int":
		v, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported value type %s", n.Line, n.ShortTag())
	}
}

func parseForm(data []byte) (assessment.Form, error) {
	var f formFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return assessment.Form{}, fmt.Errorf("parse yaml: %w", err)
	}
	guidance := make(map[tier.Tier]assessment.Guidance, len(f.Tiers))
	for k, v := range f.Tiers {
		guidance[tier.Tier(k)] = assessment.Guidance{Heading: v.Heading, Advice: v.Advice}
	}
	return assessment.NewForm(f.Title, f.Skills, f.DefaultRating, guidance)
}
