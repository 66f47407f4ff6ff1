package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joshgarnett/xsd-classgen/cmd/xscgen/internal"
	"github.com/joshgarnett/xsd-classgen/generator"
	"github.com/joshgarnett/xsd-classgen/namespace"
	"github.com/joshgarnett/xsd-classgen/util"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const namespaceUsage = `map an XML namespace to an output namespace
Separate XML namespace and output namespace by '='.
One option must be given for each namespace to be mapped.
A file name may be given by appending a pipe sign (|) followed by a file name
(like schema.xsd) to the XML namespace.
If no mapping is found for an XML namespace, a name is generated automatically.`

// options holds raw flag values until they are validated into a configuration.
type options struct {
	namespaces []string
	output     string
	integer    string
	prefix     string

	dataBinding bool
	order       bool
	pcl         bool
	verbose     bool
	nullables   bool
	ef          bool
	interfaces  bool
	pascal      bool

	collectionType         string
	collectionImplType     string
	codeTypeReferenceFlags string
}

func (o *options) bind(f *pflag.FlagSet) {
	f.SortFlags = false

	f.StringArrayVarP(&o.namespaces, "namespace", "n", nil, namespaceUsage)
	f.StringVarP(&o.output, "output", "o", "", "the `FOLDER` to write the generated files to")
	f.StringVarP(&o.integer, "integer", "i", "", "map xs:integer and derived types to `TYPE` instead of string\nTYPE can be i[nt], l[ong], or d[ecimal]")
	f.StringVarP(&o.prefix, "prefix", "p", "", "the `PREFIX` to prepend to generated namespace names")

	f.BoolVarP(&o.dataBinding, "enable-data-binding", "e", false, "enable INotifyPropertyChanged data binding (alias --edb)")
	f.BoolVar(&o.dataBinding, "edb", false, "alias for --enable-data-binding")
	f.BoolVarP(&o.order, "order", "r", false, "emit order for all class members stored as XML element")
	f.BoolVarP(&o.pcl, "pcl", "c", false, "PCL compatible output")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "print generated file names on stdout")
	f.BoolVarP(&o.nullables, "nullable", "0", false, "generate nullable adapter properties for optional elements/attributes w/o default values")
	f.BoolVarP(&o.ef, "ef", "f", false, "generate Entity Framework Code First compatible classes")
	f.BoolVarP(&o.interfaces, "interface", "t", true, "generate interfaces for groups and attribute groups")
	f.BoolVarP(&o.pascal, "pascal", "a", true, "use Pascal case for class and property names")

	f.StringVar(&o.collectionType, "collectionType", "", "collection `TYPE` to use (alias --ct, default Collection)")
	f.StringVar(&o.collectionType, "ct", "", "alias for --collectionType")
	f.StringVar(&o.collectionImplType, "collectionImplementationType", "", "the default collection implementation `TYPE` (alias --cit)")
	f.StringVar(&o.collectionImplType, "cit", "", "alias for --collectionImplementationType")
	f.StringVar(&o.codeTypeReferenceFlags, "codeTypeReferenceOptions", "", "type reference `FLAGS`: GlobalReference, GenericTypeParameter (alias --ctro)")
	f.StringVar(&o.codeTypeReferenceFlags, "ctro", "", "alias for --codeTypeReferenceOptions")

	for _, alias := range []string{"edb", "ct", "cit", "ctro"} {
		_ = f.MarkHidden(alias)
	}
}

func (o *options) run(cmd *cobra.Command, args []string, engine generator.Engine) error {
	level := util.LevelWarn
	if o.verbose {
		level = util.LevelVerbose
	}
	diag := util.NewDiagnosticsWithWriters(level, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := o.configuration(cmd.Flags())
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.Log = diag.Println
	}

	files := internal.ExpandPatterns(args)
	diag.Verbose("Input files: %s", strings.Join(files, ", "))
	for _, m := range cfg.NamespaceProvider.Mappings() {
		diag.Verbose("Namespace mapping: %s -> %s", m.Key, m.Target)
	}

	if err := engine.Generate(cmd.Context(), files, cfg); err != nil {
		return fmt.Errorf("generating: %w", err)
	}
	return nil
}

// configuration validates the raw flag values. Later flags have already replaced
// earlier ones during parsing. A flag given explicitly is validated even when its
// value is empty.
func (o *options) configuration(flags *pflag.FlagSet) (generator.Configuration, error) {
	cfg := generator.DefaultConfiguration()

	if changed(flags, "integer") {
		integerType, err := generator.ParseIntegerType(o.integer)
		if err != nil {
			return cfg, err
		}
		cfg.IntegerType = integerType
	}

	if !o.pascal {
		cfg.NamingScheme = namespace.Direct
	}

	mappings, err := namespace.ParseDirectives(o.namespaces, o.prefix)
	if err != nil {
		return cfg, err
	}
	cfg.NamespaceProvider = namespace.NewProvider(mappings, namespace.Heuristic{
		Prefix: o.prefix,
		Scheme: cfg.NamingScheme,
	})

	if o.output != "" {
		abs, absErr := filepath.Abs(o.output)
		if absErr != nil {
			return cfg, fmt.Errorf("resolving output folder: %w", absErr)
		}
		cfg.OutputFolder = abs
	}

	if changed(flags, "collectionType", "ct") {
		ct, lookupErr := generator.LookupCollection(o.collectionType)
		if lookupErr != nil {
			return cfg, lookupErr
		}
		cfg.CollectionType = ct
	}
	if changed(flags, "collectionImplementationType", "cit") {
		ct, lookupErr := generator.LookupCollection(o.collectionImplType)
		if lookupErr != nil {
			return cfg, lookupErr
		}
		cfg.CollectionImplementationType = &ct
	}

	cfg.CodeTypeReferenceOptions, err = generator.ParseCodeTypeReferenceOptions(o.codeTypeReferenceFlags)
	if err != nil {
		return cfg, err
	}

	cfg.GenerateNullables = o.nullables
	cfg.EnableDataBinding = o.dataBinding
	cfg.EmitOrder = o.order
	cfg.EntityFramework = o.ef
	cfg.GenerateInterfaces = o.interfaces

	if o.pcl {
		cfg.ApplyPortable()
	}

	return cfg, nil
}

func changed(flags *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}
