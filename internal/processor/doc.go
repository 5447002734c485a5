// Package processor runs the translation pipeline: retrieve the source
// page, fetch and translate its block tree, create the destination page
// and upload the translated blocks in batches.
package processor
