// Package jobtread implements the upstream client for the JobTread API.
//
// JobTread exposes its data through Pave, a JSON query language posted to
// a single endpoint ({base_url}/pave). A query names the fields to return
// and carries its arguments under "$" keys:
//
//	{"query": {
//	  "$": {"grantKey": "..."},
//	  "organization": {
//	    "$": {"id": "..."},
//	    "jobs": {"$": {"size": 10, "where": ["name", "like", "%kitchen%"]},
//	             "nodes": {"id": {}, "name": {}}}}}}
//
// # Resource mapping
//
//   - project: organization.jobs / job
//   - customer: organization.accounts where type = customer / account
//   - document: organization.documents / document
//
// # Authentication
//
// The grant key is sent in the query envelope and as a bearer token on
// the transport. The organisation id scopes every search.
//
// # Rate Limiting
//
// Requests are throttled with a token bucket. A 429 response with a
// Retry-After header blocks further requests until the deadline.
//
// # Error Handling
//
// HTTP failures are mapped onto the domain taxonomy:
//
//   - 401/403: domain.ErrAuth
//   - 404 or a null node: domain.ErrNotFound
//   - 408, 429, 5xx, network errors: domain.ErrUpstream, transient
//   - other statuses and undecodable payloads: domain.ErrUpstream
package jobtread
