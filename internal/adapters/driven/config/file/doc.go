// Package file stores settings in a TOML file, by default
// ~/.databolaget/config.toml. Nested tables are exposed as dot keys
// such as "output.sqlite".
package file
