// Package config provides configuration loading and validation for huectl.
//
// Configuration is a single YAML file, by default
// $XDG_CONFIG_HOME/huectl/config.yaml (~/.config/huectl/config.yaml when
// XDG_CONFIG_HOME is unset). HUECTL_CONFIG or the --config flag point at a
// different file. A missing file is not an error: the defaults apply.
//
// # Configuration Structure
//
//	shell: "sh -c '{}'"
//	default-scheme: base16-mocha
//	preferred-schemes:
//	  - base16-ocean
//	  - base24-dracula
//	hooks:
//	  - "notify-send 'huectl %o'"
//	items:
//	  - name: shell
//	    path: https://github.com/tinted-theming/tinted-shell
//	    themes-dir: scripts
//	    hook: ". %f"
//	    supported-systems: [base16]
//	    theme-file-extension: .sh
//
// # Items
//
//   - name: Unique identifier, used in the rendered file name
//   - path: Git URL (cloned under the data directory) or a local directory
//   - themes-dir: Directory inside path holding <system>-<slug>.<ext> files
//   - hook: Command run after the theme file is written; %f is the quoted
//     file path and %o the operation (apply, init)
//   - supported-systems: Restricts the item to base16 and/or base24
//   - theme-file-extension: Fixed extension of the theme files
//
// # Shell
//
// The shell template wraps every hook. It must contain exactly one "{}",
// which is checked when the file is loaded.
//
// # Data Directory
//
// Rendered files, cloned repositories and the current scheme live in
// $XDG_DATA_HOME/huectl (~/.local/share/huectl), overridable with
// HUECTL_DATA_DIR or --data-dir:
//
//	current_scheme
//	repos/schemes/<system>/<slug>.yaml
//	repos/<item>/...
//	custom-schemes/<system>/<slug>.yaml
//	<system>-<item>-<themes-dir>-file.<ext>
package config
