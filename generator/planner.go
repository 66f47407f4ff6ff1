package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joshgarnett/xsd-classgen/namespace"
	"gopkg.in/yaml.v3"
)

// PlanFileName is the name of the file the Planner writes into the output folder.
const PlanFileName = "xscgen-plan.yaml"

// Plan lists the output namespaces a generation run produces and where each one
// comes from.
type Plan struct {
	Options    PlanOptions        `yaml:"options"`
	Namespaces []PlannedNamespace `yaml:"namespaces"`
}

// PlanOptions records the generation options in effect.
type PlanOptions struct {
	IntegerType                  string `yaml:"integerType"`
	NamingScheme                 string `yaml:"namingScheme"`
	CollectionType               string `yaml:"collectionType"`
	CollectionImplementationType string `yaml:"collectionImplementationType,omitempty"`
	CodeTypeReferenceOptions     string `yaml:"codeTypeReferenceOptions"`
	DataAnnotationMode           string `yaml:"dataAnnotationMode"`
	Nullables                    bool   `yaml:"nullables"`
	DataBinding                  bool   `yaml:"dataBinding"`
	EmitOrder                    bool   `yaml:"emitOrder"`
	EntityFramework              bool   `yaml:"entityFramework"`
	Interfaces                   bool   `yaml:"interfaces"`
	XElementForAny               bool   `yaml:"xelementForAny"`
}

// PlannedNamespace is one output namespace.
type PlannedNamespace struct {
	Name string `yaml:"name"`
	// Root is set when the resolved name is empty and types land in the root namespace.
	Root          bool     `yaml:"root,omitempty"`
	XMLNamespaces []string `yaml:"xmlNamespaces"`
	Files         []string `yaml:"files,omitempty"`
}

// Planner is an Engine that resolves every namespace referenced by the input
// schemas and writes the resulting plan instead of generating code.
type Planner struct {
	// FileName overrides PlanFileName when set.
	FileName string
}

// NewPlanner creates a planner writing PlanFileName.
func NewPlanner() *Planner {
	return &Planner{FileName: PlanFileName}
}

// Generate implements Engine.
func (p *Planner) Generate(ctx context.Context, files []string, cfg Configuration) error {
	plan, err := BuildPlan(ctx, files, cfg)
	if err != nil {
		return err
	}

	dir := cfg.OutputFolder
	if dir == "" {
		dir = "."
	}
	if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
		return fmt.Errorf("creating output folder: %w", mkErr)
	}

	name := p.FileName
	if name == "" {
		name = PlanFileName
	}
	path := filepath.Join(dir, name)

	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	if writeErr := os.WriteFile(path, data, 0o644); writeErr != nil {
		return fmt.Errorf("writing plan: %w", writeErr)
	}

	cfg.logf("%s", path)
	return nil
}

// BuildPlan reads the header of every schema in files and resolves its target
// namespace and imported namespaces through cfg.NamespaceProvider. Namespaces
// appear in the order they are first encountered.
func BuildPlan(ctx context.Context, files []string, cfg Configuration) (*Plan, error) {
	if cfg.NamespaceProvider == nil {
		return nil, errors.New("no namespace provider configured")
	}

	// An imported schema that is also an input keeps the input's spelling, so both
	// routes to the same file resolve through the same key.
	inputs := make(map[string]string, len(files))
	for _, file := range files {
		if _, ok := inputs[filepath.Clean(file)]; !ok {
			inputs[filepath.Clean(file)] = file
		}
	}

	b := planBuilder{index: map[string]int{}}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		header, err := ReadSchemaHeader(file)
		if err != nil {
			return nil, err
		}

		key := namespace.NewScopedKey(file, header.TargetNamespace)
		b.add(cfg.NamespaceProvider.Resolve(key), header.TargetNamespace, file)

		for _, imp := range header.Imports {
			importKey := namespace.NewKey(imp.Namespace)
			location := importLocation(file, imp.SchemaLocation)
			if input, ok := inputs[location]; ok && location != "" {
				location = input
			}
			if location != "" {
				importKey = namespace.NewScopedKey(location, imp.Namespace)
			}
			b.add(cfg.NamespaceProvider.Resolve(importKey), imp.Namespace, location)
		}
	}

	return &Plan{
		Options:    planOptions(cfg),
		Namespaces: b.namespaces,
	}, nil
}

// importLocation resolves a relative schemaLocation against the importing file and
// cleans the result. Remote locations are kept as written.
func importLocation(file, location string) string {
	if location == "" || strings.Contains(location, "://") {
		return location
	}
	if filepath.IsAbs(location) {
		return filepath.Clean(location)
	}
	return filepath.Join(filepath.Dir(file), location)
}

type planBuilder struct {
	namespaces []PlannedNamespace
	index      map[string]int
}

func (b *planBuilder) add(name, xmlNamespace, file string) {
	i, ok := b.index[name]
	if !ok {
		i = len(b.namespaces)
		b.index[name] = i
		b.namespaces = append(b.namespaces, PlannedNamespace{Name: name, Root: name == ""})
	}

	ns := &b.namespaces[i]
	if !slices.Contains(ns.XMLNamespaces, xmlNamespace) {
		ns.XMLNamespaces = append(ns.XMLNamespaces, xmlNamespace)
	}
	if file != "" && !slices.Contains(ns.Files, file) {
		ns.Files = append(ns.Files, file)
	}
}

func planOptions(cfg Configuration) PlanOptions {
	opts := PlanOptions{
		IntegerType:              string(cfg.IntegerType),
		NamingScheme:             cfg.NamingScheme.String(),
		CollectionType:           cfg.CollectionType.String(),
		CodeTypeReferenceOptions: cfg.CodeTypeReferenceOptions.String(),
		DataAnnotationMode:       cfg.DataAnnotationMode.String(),
		Nullables:                cfg.GenerateNullables,
		DataBinding:              cfg.EnableDataBinding,
		EmitOrder:                cfg.EmitOrder,
		EntityFramework:          cfg.EntityFramework,
		Interfaces:               cfg.GenerateInterfaces,
		XElementForAny:           cfg.UseXElementForAny,
	}
	if cfg.CollectionImplementationType != nil {
		opts.CollectionImplementationType = cfg.CollectionImplementationType.String()
	}
	return opts
}
