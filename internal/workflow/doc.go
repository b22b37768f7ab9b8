// Package workflow drives queue items through the probing and styling
// stages. One lane processes items oldest-first; each stage run gets a
// correlation ID and rolls the item forward or marks it failed.
package workflow
