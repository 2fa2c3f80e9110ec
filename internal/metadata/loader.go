package metadata

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	zerrors "github.com/zmodtool/cli/internal/errors"
	"github.com/zmodtool/cli/internal/output"
)

// metadataDoc mirrors the module.yml schema. Decoding is strict: unknown
// keys anywhere in the document are a schema violation.
type metadataDoc struct {
	Name    string    `yaml:"name"`
	Build   *buildDoc `yaml:"build"`
	Tests   []string  `yaml:"tests"`
	Samples []string  `yaml:"samples"`
	Boards  []string  `yaml:"boards"`
}

type buildDoc struct {
	CMake      string       `yaml:"cmake"`
	Kconfig    string       `yaml:"kconfig"`
	CMakeExt   bool         `yaml:"cmake-ext"`
	KconfigExt bool         `yaml:"kconfig-ext"`
	Depends    []string     `yaml:"depends"`
	Settings   *settingsDoc `yaml:"settings"`
}

type settingsDoc struct {
	BoardRoot     string `yaml:"board_root"`
	DtsRoot       string `yaml:"dts_root"`
	SocRoot       string `yaml:"soc_root"`
	ArchRoot      string `yaml:"arch_root"`
	ModuleExtRoot string `yaml:"module_ext_root"`
}

// rootSettings returns the declared root-kind settings as a map, keyed the
// way RootKinds names them.
func (s *settingsDoc) rootSettings() map[string]string {
	declared := map[string]string{
		"board":      s.BoardRoot,
		"dts":        s.DtsRoot,
		"soc":        s.SocRoot,
		"arch":       s.ArchRoot,
		"module_ext": s.ModuleExtRoot,
	}
	out := make(map[string]string)
	for kind, value := range declared {
		if value != "" {
			out[kind] = value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Load determines whether the given directory qualifies as a module and, if
// so, returns its validated metadata.
//
// Qualification, in priority order:
//  1. zephyr/module.yml exists — parse and validate it; a schema violation
//     or an invalid declared setting is a fatal error.
//  2. Both zephyr/CMakeLists.txt and zephyr/Kconfig exist — synthesize an
//     implicit module with convention-based build settings.
//  3. Otherwise the directory is not a module and ErrNotModule is returned;
//     callers distinguish this from an invalid module.
func Load(root string) (*Module, error) {
	ymlPath := filepath.Join(root, "zephyr", "module.yml")
	if isFile(ymlPath) {
		return loadDeclared(root, ymlPath)
	}

	if isFile(filepath.Join(root, "zephyr", "CMakeLists.txt")) &&
		isFile(filepath.Join(root, "zephyr", "Kconfig")) {
		name := filepath.Base(root)
		output.Debug("implicit module", "path", root, "name", name)
		return &Module{
			Name:          name,
			SanitizedName: SanitizeName(name),
			Path:          root,
			Build: &BuildSection{
				CMake:   DefaultCMakeDir,
				Kconfig: DefaultKconfigFile,
			},
			Implicit: true,
		}, nil
	}

	return nil, zerrors.Wrap(zerrors.ErrNotModule, root)
}

func loadDeclared(root, ymlPath string) (*Module, error) {
	data, err := os.ReadFile(ymlPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ymlPath, err)
	}

	doc, err := decodeStrict(data)
	if err != nil {
		return nil, zerrors.Wrapf(zerrors.ErrSchema,
			"malformed metadata file %s: %v", ymlPath, err)
	}

	// Declared settings are validated here, at load time. A setting whose
	// integration is delegated externally via the matching -ext flag is
	// never consulted, so it is not checked either.
	if doc.Build != nil {
		if s := doc.Build.CMake; s != "" && !doc.Build.CMakeExt {
			if !isFile(filepath.Join(root, s, "CMakeLists.txt")) {
				return nil, zerrors.Wrapf(zerrors.ErrInvalidSetting,
					`"cmake" key in %s has folder value %q which does not contain a CMakeLists.txt file`,
					ymlPath, s)
			}
		}
		if s := doc.Build.Kconfig; s != "" && !doc.Build.KconfigExt {
			if !isFile(filepath.Join(root, s)) {
				return nil, zerrors.Wrapf(zerrors.ErrInvalidSetting,
					`"kconfig" key in %s has value %q which does not point to a valid Kconfig file`,
					ymlPath, s)
			}
		}
	}

	name := doc.Name
	if name == "" {
		name = filepath.Base(root)
	}

	m := &Module{
		Name:          name,
		SanitizedName: SanitizeName(name),
		Path:          root,
		Tests:         doc.Tests,
		Samples:       doc.Samples,
		Boards:        doc.Boards,
	}
	if doc.Build != nil {
		m.Build = &BuildSection{
			CMake:      doc.Build.CMake,
			Kconfig:    doc.Build.Kconfig,
			CMakeExt:   doc.Build.CMakeExt,
			KconfigExt: doc.Build.KconfigExt,
			Depends:    doc.Build.Depends,
		}
		if doc.Build.Settings != nil {
			m.Build.Settings = doc.Build.Settings.rootSettings()
		}
	}

	output.Debug("loaded module metadata",
		"path", root, "name", m.Name, "depends", m.DependsOn())

	return m, nil
}

// decodeStrict decodes module.yml rejecting unknown keys. An empty or null
// document is also rejected: a module.yml that declares nothing is
// malformed, whether the file is byte-empty or spells out `null`.
func decodeStrict(data []byte) (*metadataDoc, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if node.Kind == 0 || len(node.Content) == 0 || node.Content[0].Tag == "!!null" {
		return nil, errors.New("document is empty")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc metadataDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
