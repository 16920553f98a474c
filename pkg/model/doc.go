// Package model describes the serialized entities of a repository: the
// durable config document and the exchange selection used during
// import/export.
package model
