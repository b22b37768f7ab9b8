// Package textutil sanitizes titles and filenames for safe filesystem use.
package textutil
