// Package notion is a small client for the parts of the Notion API this
// tool needs: retrieving a page, listing block children with cursor
// pagination, creating a page and appending block children.
//
// Blocks are kept as decoded JSON maps rather than typed structs so that
// every block type the API returns survives a read-modify-write round
// trip unchanged.
package notion
