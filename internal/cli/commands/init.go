package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantica/units/internal/catalog"
	"github.com/quantica/units/internal/cli/ui"
)

const catalogHeader = `# Unit catalog consumed by unitgen generate.
# Mass is based on the gram so that Kilogram is the Kilo prefix applied to it.

`

// storageKinds maps a numeric type to the package its aliases go into
var storageKinds = map[string]catalog.Storage{
	"int64":   {Package: "i", Type: "int64", Doc: "exact integer storage"},
	"int32":   {Package: "i32", Type: "int32", Doc: "compact integer storage"},
	"float64": {Package: "f", Type: "float64", Doc: "approximate floating point storage"},
	"float32": {Package: "f32", Type: "float32", Doc: "compact floating point storage"},
}

// initOptions are the answers init writes into the starter files
type initOptions struct {
	Module   string
	Output   string
	Storage  []string
	Prefixes bool
}

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	var (
		dir         string
		interactive bool
		force       bool
		opts        initOptions
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write unitgen.yaml and a starter catalog",
		Long: `Write unitgen.yaml and catalog.yaml into a directory.

The module path defaults to the one in go.mod. The starter catalog holds the
SI prefixes, the seven base units and common mechanical derived dimensions.

Examples:
  unitgen init
  unitgen init --module example.com/lab --output internal/units
  unitgen init --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			out := cmd.OutOrStdout()

			if opts.Module == "" {
				opts.Module = readModulePath(filepath.Join(dir, "go.mod"))
			}
			if interactive {
				if err := askInitOptions(&opts); err != nil {
					return err
				}
			}
			if opts.Module == "" {
				return fmt.Errorf("module path required: pass --module or run init next to go.mod")
			}

			cat, err := starterCatalog(opts)
			if err != nil {
				return err
			}

			configPath := filepath.Join(dir, "unitgen.yaml")
			catalogPath := filepath.Join(dir, "catalog.yaml")
			if !force {
				for _, path := range []string{configPath, catalogPath} {
					if _, err := os.Stat(path); err == nil {
						return fmt.Errorf("%s already exists (use --force to overwrite)", path)
					}
				}
			}

			data, err := cat.Marshal()
			if err != nil {
				return fmt.Errorf("failed to encode catalog: %w", err)
			}
			if err := os.WriteFile(catalogPath, append([]byte(catalogHeader), data...), 0o644); err != nil {
				return fmt.Errorf("failed to write catalog: %w", err)
			}

			v := viper.New()
			v.Set("catalog", "catalog.yaml")
			v.Set("output", opts.Output)
			v.Set("module", opts.Module)
			v.Set("log_level", "info")
			v.Set("watch.debounce", "100ms")
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			ui.WriteSuccess(out, "Created "+configPath, noColor)
			ui.WriteSuccess(out, fmt.Sprintf("Created %s (%d units)", catalogPath, len(cat.Units())*len(cat.Storage)), noColor)
			fmt.Fprintln(out, "\nNext steps:")
			fmt.Fprintln(out, "  1. Edit catalog.yaml")
			fmt.Fprintln(out, "  2. Run 'unitgen generate'")
			fmt.Fprintln(out, "  3. Run 'unitgen verify'")
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write the files into")
	cmd.Flags().StringVar(&opts.Module, "module", "", "Go module path (default: read from go.mod)")
	cmd.Flags().StringVar(&opts.Output, "output", "pkg/units", "Directory of the generated core package")
	cmd.Flags().StringSliceVar(&opts.Storage, "storage", []string{"int64", "float64"}, "Numeric types to generate units for")
	cmd.Flags().BoolVar(&opts.Prefixes, "prefixes", true, "Include the SI prefixes from atto to exa")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Ask for each setting")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

func askInitOptions(opts *initOptions) error {
	kinds := make([]string, 0, len(storageKinds))
	for k := range storageKinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	qs := []*survey.Question{
		{
			Name:     "module",
			Prompt:   &survey.Input{Message: "Go module path:", Default: opts.Module},
			Validate: survey.Required,
		},
		{
			Name:     "output",
			Prompt:   &survey.Input{Message: "Directory of the generated core package:", Default: opts.Output},
			Validate: survey.Required,
		},
		{
			Name:     "storage",
			Prompt:   &survey.MultiSelect{Message: "Numeric storage types:", Options: kinds, Default: opts.Storage},
			Validate: survey.MinItems(1),
		},
		{
			Name:   "prefixes",
			Prompt: &survey.Confirm{Message: "Include SI prefixes from atto to exa?", Default: opts.Prefixes},
		},
	}

	var answers struct {
		Module   string
		Output   string
		Storage  []string
		Prefixes bool
	}
	if err := survey.Ask(qs, &answers); err != nil {
		return err
	}

	opts.Module = answers.Module
	opts.Output = answers.Output
	opts.Storage = answers.Storage
	opts.Prefixes = answers.Prefixes
	return nil
}

// starterCatalog trims the default catalog to the chosen options
func starterCatalog(opts initOptions) (*catalog.Catalog, error) {
	cat := catalog.Default()
	if !opts.Prefixes {
		cat.Prefixes = nil
	}

	cat.Storage = nil
	for _, kind := range opts.Storage {
		s, ok := storageKinds[kind]
		if !ok {
			return nil, fmt.Errorf("unsupported storage type %q", kind)
		}
		cat.Storage = append(cat.Storage, s)
	}
	if len(cat.Storage) == 0 {
		return nil, errors.New("at least one storage type is required")
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// readModulePath returns the module path declared in a go.mod file, or ""
func readModulePath(gomod string) string {
	f, err := os.Open(gomod)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "module"); ok && rest != "" && (rest[0] == ' ' || rest[0] == '\t') {
			return strings.Trim(strings.TrimSpace(rest), `"`)
		}
	}
	return ""
}
