// Package types defines the JSON bodies of the query API.
package types
