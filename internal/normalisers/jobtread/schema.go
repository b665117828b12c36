package jobtread

import "github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"

// field maps an upstream path onto a metadata key.
type field struct {
	key   string
	path  string
	label string
}

// schema describes how one resource type is normalised.
type schema struct {
	urlSegment  string
	titlePath   string
	numberPath  string
	description string
	snippet     []field
	metadata    []field
}

var schemas = map[domain.ResourceType]schema{
	domain.ResourceProject: {
		urlSegment:  "jobs",
		titlePath:   "name",
		numberPath:  "number",
		description: "description",
		snippet: []field{
			{path: "description"},
			{path: "status", label: "Status"},
			{path: "location.address"},
			{path: "location.account.name", label: "Customer"},
		},
		metadata: []field{
			{key: "number", path: "number", label: "Number"},
			{key: "status", path: "status", label: "Status"},
			{key: "customer", path: "location.account.name", label: "Customer"},
			{key: "address", path: "location.address", label: "Location"},
			{key: "created_at", path: "createdAt", label: "Created"},
		},
	},
	domain.ResourceCustomer: {
		urlSegment:  "customers",
		titlePath:   "name",
		description: "notes",
		snippet: []field{
			{path: "notes"},
			{path: "primaryContact.name", label: "Contact"},
			{path: "primaryContact.email"},
			{path: "type", label: "Type"},
		},
		metadata: []field{
			{key: "type", path: "type", label: "Type"},
			{key: "contact", path: "primaryContact.name", label: "Contact"},
			{key: "email", path: "primaryContact.email", label: "Email"},
			{key: "phone", path: "primaryContact.phone", label: "Phone"},
			{key: "created_at", path: "createdAt", label: "Created"},
		},
	},
	domain.ResourceDocument: {
		urlSegment:  "documents",
		titlePath:   "name",
		numberPath:  "number",
		description: "description",
		snippet: []field{
			{path: "type", label: "Type"},
			{path: "status", label: "Status"},
			{path: "job.name", label: "Project"},
			{path: "description"},
		},
		metadata: []field{
			{key: "type", path: "type", label: "Type"},
			{key: "number", path: "number", label: "Number"},
			{key: "status", path: "status", label: "Status"},
			{key: "job", path: "job.name", label: "Project"},
			{key: "issue_date", path: "issueDate", label: "Issued"},
			{key: "due_date", path: "dueDate", label: "Due"},
			{key: "total", path: "price", label: "Total"},
		},
	},
}
