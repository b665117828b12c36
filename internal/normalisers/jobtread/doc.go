// Package jobtread provides the normaliser for JobTread records.
//
// It maps the three upstream resource types onto uniform results:
//   - Projects (JobTread jobs)
//   - Customers (JobTread accounts of type customer)
//   - Documents (estimates, invoices, orders, bills)
//
// Each type is described by a schema listing the dotted field paths that
// feed the title, snippet, description and metadata. Missing fields become
// empty strings; only a missing id is an error.
package jobtread
