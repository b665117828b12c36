// Package demo provides an in-memory upstream with sample construction
// records. It backs --demo mode, which runs the server without JobTread
// credentials. Records use the same field names as the JobTread
// connector so the normaliser treats both identically.
package demo
