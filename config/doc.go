// Package config loads category level configuration from YAML and
// applies it to a logger registry, optionally re-applying the file on
// change via fsnotify for runtime level updates.
//
// Level names are validated strictly at parse time; applying a parsed
// configuration cannot fail. A reload that fails to parse leaves the
// previous configuration untouched.
package config
